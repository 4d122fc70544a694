package utils

import (
	"bytes"
	"fmt"
	"log"
	"os"

	"farm2market_back_end/internal/models"

	"github.com/wneessen/go-mail"
)

// EmailEnabled indique si le SMTP est configuré
func EmailEnabled() bool {
	return os.Getenv("SMTP_HOST") != "" && os.Getenv("SMTP_USERNAME") != ""
}

// SendConfirmationEmail envoie la confirmation de commande, facture PDF en option
func SendConfirmationEmail(to, subject, htmlBody string, pdfAttachment []byte) error {
	msg := mail.NewMsg()

	from := os.Getenv("SMTP_FROM")
	if from == "" {
		from = "noreply@farm2market.in"
	}
	if err := msg.From(from); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)

	if pdfAttachment != nil {
		msg.AttachReader("facture_farm2market.pdf", bytes.NewReader(pdfAttachment))
	}

	client, err := mail.NewClient(os.Getenv("SMTP_HOST"),
		mail.WithPort(587),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(os.Getenv("SMTP_USERNAME")),
		mail.WithPassword(os.Getenv("SMTP_PASSWORD")),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return err
	}

	log.Println("📤 Envoi de l'e-mail à", to)
	return client.DialAndSend(msg)
}

// GenerateOrderConfirmationHTML génère le HTML de confirmation de commande
func GenerateOrderConfirmationHTML(order models.Order) string {
	itemsHTML := ""
	for _, item := range order.Items {
		itemsHTML += fmt.Sprintf(`
			<tr>
				<td>%s</td>
				<td>%d %s</td>
				<td>₹%.2f</td>
				<td>₹%.2f</td>
			</tr>`, item.Name, item.Quantity, item.Unit, float64(item.Price), float64(item.Price)*float64(item.Quantity))
	}

	deliveryHTML := fmt.Sprintf("₹%.2f", order.DeliveryFee)
	if order.DeliveryFee == 0 {
		deliveryHTML = "Offerte"
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
	<h2>🌾 Farm2Market — Commande %s confirmée</h2>
	<p>Bonjour %s,</p>
	<p>Merci pour votre commande du %s. Elle sera livrée à :</p>
	<p><em>%s</em></p>
	<table border="1" cellpadding="6" cellspacing="0">
		<tr><th>Produit</th><th>Quantité</th><th>Prix unitaire</th><th>Total</th></tr>
		%s
	</table>
	<p>Sous-total : ₹%.2f<br>
	Livraison : %s<br>
	<strong>Total : ₹%.2f</strong></p>
	<p>Paiement : %s (%s)</p>
</body>
</html>`,
		order.ID, order.CustomerName, order.Date, order.Address,
		itemsHTML, order.Subtotal, deliveryHTML, order.Total,
		order.PaymentMethod, order.PaymentStatus)
}
