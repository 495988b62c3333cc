package order_mailer

import (
	"bytes"
	"fmt"
	"html/template"

	"orders/internal/entities"
)

const orderCreatedSubject = "New Order Received!"

var orderCreatedTemplate = template.Must(template.New("order_created").Parse(`<h2>New Order Received</h2>
<p><strong>Order ID:</strong> {{ .ID }}</p>
<p><strong>Customer Name:</strong> {{ .CustomerName }}</p>
<p><strong>Email:</strong> {{ .Email }}</p>
<p><strong>Address:</strong> {{ .Address }}</p>
<p><strong>Total Price:</strong> {{ .Total }}</p>
<p>Please review the order in the admin dashboard.</p>
`))

type orderCreatedView struct {
	ID           string
	CustomerName string
	Email        string
	Address      string
	Total        string
}

// RenderOrderCreated returns the HTML body of the operator alert. Customer
// supplied fields are escaped.
func RenderOrderCreated(order entities.Order) (string, error) {
	view := orderCreatedView{
		ID:           order.ID,
		CustomerName: order.CustomerName,
		Email:        order.Email,
		Address:      order.Address,
		Total:        fmt.Sprintf("Ksh %.2f", order.TotalPrice),
	}

	var body bytes.Buffer
	if err := orderCreatedTemplate.Execute(&body, view); err != nil {
		return "", fmt.Errorf("render order created mail: %w", err)
	}
	return body.String(), nil
}
