package utils

import (
	"fmt"
	"net/smtp"
	"os"
)

func SendEmail(to, subject, body string) error {
	from := os.Getenv("SMTP_EMAIL")
	pass := os.Getenv("SMTP_PASSWORD")

	// Headers: hỗ trợ UTF-8 & HTML
	msg := ""
	msg += "MIME-Version: 1.0\r\n"
	msg += "Content-Type: text/html; charset=\"UTF-8\"\r\n"
	msg += fmt.Sprintf("From: %s\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", to)
	msg += fmt.Sprintf("Subject: %s\r\n", subject)
	msg += "\r\n" + body

	err := smtp.SendMail(
		"smtp.gmail.com:587",
		smtp.PlainAuth("", from, pass, "smtp.gmail.com"),
		from,
		[]string{to},
		[]byte(msg),
	)

	if err != nil {
		return fmt.Errorf("gửi email thất bại: %v", err)
	}
	return nil
}

// SendPasswordResetEmail gửi link đặt lại mật khẩu
func SendPasswordResetEmail(to, resetLink string) error {
	body := fmt.Sprintf(`
		<h2>AnimeHub - Đặt lại mật khẩu</h2>
		<p>Bạn (hoặc ai đó) vừa yêu cầu đặt lại mật khẩu cho tài khoản này.</p>
		<p><a href="%s">Bấm vào đây để đặt lại mật khẩu</a></p>
		<p>Link có hiệu lực trong 1 giờ. Nếu không phải bạn, hãy bỏ qua email này.</p>
	`, resetLink)
	return SendEmail(to, "AnimeHub - Đặt lại mật khẩu", body)
}
