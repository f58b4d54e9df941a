package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"time"

	"github.com/msmahatha/agroCart-harvest-hub/internal/event"
)

// EmailSender delivers an order confirmation for a placed order.
type EmailSender interface {
	SendOrderConfirmation(ctx context.Context, e event.OrderPlaced) error
}

const resendEndpoint = "https://api.resend.com/emails"

// ResendSender sends confirmation emails through the Resend HTTP API.
type ResendSender struct {
	apiKey   string
	from     string
	endpoint string
	client   *http.Client
}

func NewResendSender(apiKey string) *ResendSender {
	return &ResendSender{
		apiKey:   apiKey,
		from:     "AgroCart <orders@agrocart.com>",
		endpoint: resendEndpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

type resendRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

func (s *ResendSender) SendOrderConfirmation(ctx context.Context, e event.OrderPlaced) error {
	html, err := renderOrderEmail(e)
	if err != nil {
		return fmt.Errorf("render order email: %w", err)
	}

	body, err := json.Marshal(resendRequest{
		From:    s.from,
		To:      e.UserEmail,
		Subject: fmt.Sprintf("Order Confirmation #%s", e.OrderID),
		HTML:    html,
	})
	if err != nil {
		return fmt.Errorf("marshal email request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build email request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("send email request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("email API returned %d: %s", resp.StatusCode, snippet)
	}
	return nil
}

var orderEmailTmpl = template.Must(template.New("order-confirmation").Parse(`
<div style="font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; color: #333; max-width: 600px; margin: 0 auto;">
  <div style="background-color: #4CAF50; padding: 20px; text-align: center;">
    <h1 style="color: white; margin: 0;">Order Confirmation</h1>
  </div>

  <div style="padding: 20px; border: 1px solid #eee; background-color: #fff;">
    <p>Hello {{.Name}},</p>

    <p>Thank you for your order! We're pleased to confirm that your order has been received and is being processed.</p>

    <div style="background-color: #f9f9f9; border: 1px solid #eee; padding: 15px; margin: 20px 0;">
      <h2 style="margin-top: 0; color: #4CAF50;">Order Summary</h2>
      <p><strong>Order Number:</strong> #{{.OrderID}}</p>

      <table style="width: 100%; border-collapse: collapse;">
        <thead>
          <tr style="background-color: #f5f5f5;">
            <th style="padding: 10px; text-align: left; border-bottom: 2px solid #eee;">Product</th>
            <th style="padding: 10px; text-align: center; border-bottom: 2px solid #eee;">Quantity</th>
            <th style="padding: 10px; text-align: right; border-bottom: 2px solid #eee;">Price</th>
            <th style="padding: 10px; text-align: right; border-bottom: 2px solid #eee;">Total</th>
          </tr>
        </thead>
        <tbody>
          {{range .Items}}
          <tr>
            <td style="padding: 10px; border-bottom: 1px solid #eee;">{{.Name}}</td>
            <td style="padding: 10px; border-bottom: 1px solid #eee; text-align: center;">{{.Quantity}}</td>
            <td style="padding: 10px; border-bottom: 1px solid #eee; text-align: right;">{{$.Symbol}}{{.Price}}</td>
            <td style="padding: 10px; border-bottom: 1px solid #eee; text-align: right;">{{$.Symbol}}{{.LineTotal}}</td>
          </tr>
          {{end}}
        </tbody>
        <tfoot>
          <tr>
            <td colspan="3" style="padding: 10px; text-align: right; font-weight: bold;">Order Total:</td>
            <td style="padding: 10px; text-align: right; font-weight: bold;">{{.Symbol}}{{.Total}}</td>
          </tr>
        </tfoot>
      </table>
    </div>

    <p>If you have any questions or concerns about your order, please contact our customer service team.</p>

    <p>Thank you for shopping with AgroCart!</p>
  </div>

  <div style="padding: 20px; text-align: center; font-size: 12px; color: #777;">
    <p>© AgroCart. All rights reserved.</p>
    <p>This is an automated email, please do not reply.</p>
  </div>
</div>
`))

type emailItem struct {
	Name      string
	Quantity  int
	Price     string
	LineTotal string
}

type emailData struct {
	Name    string
	OrderID string
	Symbol  string
	Items   []emailItem
	Total   string
}

func currencySymbol(code string) string {
	switch code {
	case "INR":
		return "₹"
	case "USD":
		return "$"
	default:
		return code + " "
	}
}

func renderOrderEmail(e event.OrderPlaced) (string, error) {
	name := e.UserName
	if name == "" {
		name = "Valued Customer"
	}

	items := make([]emailItem, len(e.Items))
	for i, item := range e.Items {
		items[i] = emailItem{
			Name:      item.ProductName,
			Quantity:  item.Quantity,
			Price:     fmt.Sprintf("%.2f", item.UnitPrice),
			LineTotal: fmt.Sprintf("%.2f", item.UnitPrice*float64(item.Quantity)),
		}
	}

	var buf bytes.Buffer
	err := orderEmailTmpl.Execute(&buf, emailData{
		Name:    name,
		OrderID: e.OrderID,
		Symbol:  currencySymbol(e.Currency),
		Items:   items,
		Total:   fmt.Sprintf("%.2f", e.Total),
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
