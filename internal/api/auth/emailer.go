package auth

import (
	"fmt"
	"net/smtp"

	"eduplatform/config"
)

func SendPasswordResetEmail(to string, link string) error {
	from := config.SMTP_FROM
	auth := smtp.PlainAuth("", from, config.SMTP_PASSWORD, config.SMTP_HOST)

	subject := "Password Reset"
	body := fmt.Sprintf("Click the following link to reset your password:\n\n%s\n\nThe link expires in one hour.", link)

	message := []byte("Subject: " + subject + "\r\n" +
		"From: " + from + "\r\n" +
		"To: " + to + "\r\n" +
		"Content-Type: text/plain; charset=UTF-8\r\n" +
		"\r\n" +
		body + "\r\n")

	addr := config.SMTP_HOST + ":" + config.SMTP_PORT
	return smtp.SendMail(addr, auth, from, []string{to}, message)
}
