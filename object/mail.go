package object

import (
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// builtinSendmail implements sendmail(to, subject, body).
// SMTP host, port, sender, and credentials come from the environment:
// GIBBON_SMTP_HOST, GIBBON_SMTP_PORT, GIBBON_SMTP_FROM,
// GIBBON_SMTP_USER, GIBBON_SMTP_PASSWORD.
func builtinSendmail(args ...Object) Object {
	if len(args) != 3 {
		return newError("wrong number of arguments. got=%d, want=3", len(args))
	}
	to, ok := args[0].(*String)
	if !ok {
		return newError("first argument to `sendmail` must be STRING, got %s", args[0].Type())
	}
	subject, ok := args[1].(*String)
	if !ok {
		return newError("second argument to `sendmail` must be STRING, got %s", args[1].Type())
	}
	body, ok := args[2].(*String)
	if !ok {
		return newError("third argument to `sendmail` must be STRING, got %s", args[2].Type())
	}

	host := os.Getenv("GIBBON_SMTP_HOST")
	if host == "" {
		return newError("sendmail: GIBBON_SMTP_HOST is not set")
	}
	port := 587
	if p := os.Getenv("GIBBON_SMTP_PORT"); p != "" {
		parsed, err := strconv.Atoi(p)
		if err != nil {
			return newError("sendmail: invalid GIBBON_SMTP_PORT %q", p)
		}
		port = parsed
	}
	from := os.Getenv("GIBBON_SMTP_FROM")
	if from == "" {
		return newError("sendmail: GIBBON_SMTP_FROM is not set")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", to.Value)
	m.SetHeader("Subject", subject.Value)
	m.SetBody("text/plain", body.Value)

	d := gomail.NewDialer(host, port, os.Getenv("GIBBON_SMTP_USER"), os.Getenv("GIBBON_SMTP_PASSWORD"))
	if err := d.DialAndSend(m); err != nil {
		return newError("sendmail: %s", err)
	}
	return &Boolean{Value: true}
}
