package email

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

type EmailSender struct {
	apiKey      string
	senderEmail string
	senderName  string
	frontend    string
}

func NewEmailSender(apiKey, senderEmail, frontend string) *EmailSender {
	return &EmailSender{
		apiKey:      apiKey,
		senderEmail: senderEmail,
		senderName:  "StudyHub Support",
		frontend:    frontend,
	}
}

// SendGrid request format
type sgEmail struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}
type sgContent struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}
type sgRequest struct {
	Personalizations []struct {
		To []sgEmail `json:"to"`
	} `json:"personalizations"`
	From    sgEmail     `json:"from"`
	Subject string      `json:"subject"`
	Content []sgContent `json:"content"`
}

func (s *EmailSender) SendResetEmail(toEmail string, token string) error {
	resetLink := fmt.Sprintf("%s/update-password/%s", s.frontend, token)

	html := fmt.Sprintf(`
	<html>
	<body style="font-family: Arial, sans-serif; color: #1b263b;">
		<h3>Сброс пароля</h3>
		<p>Вы запросили сброс пароля. Ссылка действует 1 час.</p>
		<p><a href="%s">Установить новый пароль</a></p>
		<p style="font-size: 12px; color: #888888;">Если вы не запрашивали сброс пароля, просто проигнорируйте это письмо.</p>
	</body>
	</html>
	`, resetLink)

	return s.send(toEmail, "Восстановление пароля", html)
}

func (s *EmailSender) SendPaymentReceived(toEmail, name string, amount int, orderID, paymentID string) error {
	html := fmt.Sprintf(`
	<html>
	<body style="font-family: Arial, sans-serif; color: #1b263b;">
		<h3>Оплата получена</h3>
		<p>%s, мы получили вашу оплату на сумму %d ₹.</p>
		<p>Заказ: %s<br>Платеж: %s</p>
	</body>
	</html>
	`, name, amount, orderID, paymentID)

	return s.send(toEmail, "Оплата получена", html)
}

func (s *EmailSender) SendEnrollmentEmail(toEmail, name, courseTitle string) error {
	html := fmt.Sprintf(`
	<html>
	<body style="font-family: Arial, sans-serif; color: #1b263b;">
		<h3>Добро пожаловать на курс!</h3>
		<p>%s, вы записаны на курс «%s». Он уже доступен в вашем кабинете.</p>
	</body>
	</html>
	`, name, courseTitle)

	return s.send(toEmail, "Вы записаны на курс", html)
}

func (s *EmailSender) send(toEmail, subject, html string) error {
	body := sgRequest{
		Personalizations: []struct {
			To []sgEmail `json:"to"`
		}{
			{To: []sgEmail{{Email: toEmail}}},
		},
		From: sgEmail{
			Email: s.senderEmail,
			Name:  s.senderName,
		},
		Subject: subject,
		Content: []sgContent{
			{Type: "text/html", Value: html},
		},
	}

	bodyBytes, _ := json.Marshal(body)

	req, err := http.NewRequest(
		"POST",
		"https://api.sendgrid.com/v3/mail/send",
		bytes.NewBuffer(bodyBytes),
	)
	if err != nil {
		return err
	}

	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 15 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	// SendGrid возвращает 202 при успехе
	if resp.StatusCode >= 400 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("sendgrid error: status=%d body=%s", resp.StatusCode, respBody)
	}

	return nil
}
