package mail

import (
	"fmt"

	"github.com/medsched/medsched/pkg/brformat"
)

func renderConfirmation(conf Confirmation) (subject, text, html string) {
	date := brformat.Date(conf.AppointmentAt)
	clock := brformat.Time(conf.AppointmentAt)
	price := brformat.Price(conf.Price)

	subject = fmt.Sprintf("Consulta Confirmada - %s às %s", date, clock)

	text = fmt.Sprintf(`Olá, %s!

Sua consulta foi agendada com sucesso. Confira os detalhes:

Data: %s
Horário: %s
Médico: %s
Especialidade: %s
Valor: %s

Importante: Caso precise cancelar, faça-o com pelo menos 2 horas de antecedência.

Até breve!
`, conf.PatientName, date, clock, conf.DoctorName, conf.Specialty, price)

	html = fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
  <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
    <div style="background-color: #2563eb; color: white; padding: 20px; text-align: center; border-radius: 8px 8px 0 0;">
      <h1>Consulta Confirmada</h1>
    </div>
    <div style="background-color: #f8fafc; padding: 30px; border: 1px solid #e2e8f0;">
      <p>Olá, <strong>%s</strong>!</p>
      <p>Sua consulta foi agendada com sucesso. Confira os detalhes abaixo:</p>
      <div style="background-color: #dbeafe; padding: 15px; border-radius: 8px; margin: 20px 0;">
        <p><strong>Data:</strong> %s</p>
        <p><strong>Horário:</strong> %s</p>
        <p><strong>Médico:</strong> %s</p>
        <p><strong>Especialidade:</strong> %s</p>
        <p><strong>Valor:</strong> <strong>%s</strong></p>
      </div>
      <p><strong>Importante:</strong> Caso precise cancelar, faça-o com pelo menos 2 horas de antecedência.</p>
      <p>Até breve!</p>
    </div>
  </div>
</body>
</html>
`, conf.PatientName, date, clock, conf.DoctorName, conf.Specialty, price)

	return subject, text, html
}
