package email

import "html/template"

var customerTmpl = template.Must(template.New("customer").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>Thank you, {{.Customer.Name}}!</h2>
  <p>We have received your booking request for <strong>{{.EventDate}}</strong>.</p>
  <table cellpadding="4">
    <tr><td>Reference</td><td>{{.BookingID}}</td></tr>
    <tr><td>Event</td><td>{{.EventType}}</td></tr>
    <tr><td>Menu</td><td>{{.MenuName}}</td></tr>
    <tr><td>Guests</td><td>{{.GuestCount}}</td></tr>
    <tr><td>Area</td><td>{{.ServiceArea}}</td></tr>
    <tr><td>Menu subtotal</td><td>R{{.Quote.MenuSubtotal}}</td></tr>
    <tr><td>Travel fee</td><td>R{{.Quote.TravelFee}}</td></tr>
    <tr><td><strong>Total</strong></td><td><strong>R{{.Quote.Total}}</strong></td></tr>
  </table>
  {{if .Quote.DiscountApplied}}<p>Your guest count qualifies for our large-event discount. We will confirm the final amount with you.</p>{{end}}
  {{if .NeedsReview}}<p>We have another event close to this date and will confirm availability with you shortly.</p>{{end}}
  <p>We will be in touch to finalise the details.</p>
</body>
</html>`))

var internalTmpl = template.Must(template.New("internal").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h3>New booking {{.BookingID}}</h3>
  {{if .NeedsReview}}<p style="color: #b00;"><strong>Needs review:</strong> conflicting event on this date.</p>{{end}}
  <ul>
    <li>Date: {{.EventDate}}</li>
    <li>Customer: {{.Customer.Name}} ({{.Customer.Email}}, {{.Customer.Phone}})</li>
    <li>Event: {{.EventType}}</li>
    <li>Menu: {{.MenuName}} for {{.GuestCount}} guests</li>
    <li>Area: {{.ServiceArea}}</li>
    <li>Total: R{{.Quote.Total}}{{if .Quote.DiscountApplied}} (discount applies){{end}}</li>
  </ul>
</body>
</html>`))
