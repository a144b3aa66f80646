package mail

import (
	"fmt"
	"html/template"
	"strings"
)

// Mail bodies mirror the copy the support team already knows from the
// old site, inline styles and all.

var adminTmpl = template.Must(template.New("admin").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <div style="background: linear-gradient(135deg, #FF006E 0%, #FB5607 100%); padding: 30px; text-align: center;">
    <h1 style="color: white; margin: 0;">New Support Message</h1>
  </div>
  <div style="padding: 30px; background: #f9f9f9;">
    <div style="background: white; padding: 20px; border-radius: 8px; margin-bottom: 20px;">
      <p style="margin: 0; color: #666; font-size: 12px;">FROM</p>
      <p style="margin: 5px 0 0 0; font-size: 16px; font-weight: bold; color: #333;">{{.Email}}</p>
    </div>
    <div style="background: white; padding: 20px; border-radius: 8px; margin-bottom: 20px;">
      <p style="margin: 0; color: #666; font-size: 12px;">SUBJECT</p>
      <p style="margin: 5px 0 0 0; font-size: 16px; font-weight: bold; color: #333;">{{.Subject}}</p>
    </div>
    <div style="background: white; padding: 20px; border-radius: 8px;">
      <p style="margin: 0; color: #666; font-size: 12px;">MESSAGE</p>
      <p style="margin: 15px 0 0 0; font-size: 14px; color: #333; white-space: pre-wrap;">{{.Message}}</p>
    </div>
  </div>
  <div style="padding: 20px; background: #f0f0f0; text-align: center;">
    <p style="margin: 0; color: #666; font-size: 12px;">Received: {{.ReceivedAt}}</p>
    <p style="margin: 10px 0 0 0; color: #999; font-size: 11px;">Reply directly to this email to respond to {{.Email}}</p>
  </div>
</div>
`))

var ackTmpl = template.Must(template.New("ack").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <div style="background: linear-gradient(135deg, #FF006E 0%, #FB5607 50%, #FFBE0B 100%); padding: 40px; text-align: center;">
    <h1 style="color: white; margin: 0;">Thanks for Reaching Out! 🍔</h1>
  </div>
  <div style="padding: 30px;">
    <p style="font-size: 16px; color: #333;">Hi there! 👋</p>
    <p style="font-size: 16px; color: #333;">
      We've received your message and our team will get back to you within 24-48 hours
      during business days (Monday-Friday, 9am-5pm EST).
    </p>
    <div style="background: #f8f8f8; padding: 20px; border-radius: 8px; margin: 20px 0;">
      <p style="margin: 0; color: #666; font-size: 12px;">YOUR MESSAGE</p>
      <p style="margin: 10px 0 5px 0; font-weight: bold; color: #333;">{{.Subject}}</p>
      <p style="margin: 10px 0 0 0; color: #666; font-size: 14px; white-space: pre-wrap;">{{.Message}}</p>
    </div>
    <p style="font-size: 16px; color: #333;">In the meantime, you can:</p>
    <ul style="font-size: 14px; color: #333;">
      <li>Check out our <a href="https://bitemap.app/support.html" style="color: #FF006E;">FAQ section</a></li>
      <li>Read our <a href="https://bitemap.app/blog/" style="color: #FF006E;">blog</a> for updates</li>
      <li>Follow us on social media for the latest news</li>
    </ul>
    <p style="font-size: 16px; color: #333;">Best,<br>The BiteMap Team</p>
  </div>
  <div style="background: #f5f5f5; padding: 20px; text-align: center;">
    <p style="font-size: 12px; color: #999; margin: 0;">
      © 2024 BiteMap | <a href="https://bitemap.app" style="color: #FF006E;">bitemap.app</a>
    </p>
  </div>
</div>
`))

var subscribeTmpl = template.Must(template.New("subscribe").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <div style="background: linear-gradient(135deg, #FF006E 0%, #FB5607 100%); padding: 30px; text-align: center;">
    <h1 style="color: white; margin: 0;">New Subscriber</h1>
  </div>
  <div style="padding: 30px; background: #f9f9f9;">
    <div style="background: white; padding: 20px; border-radius: 8px; margin-bottom: 20px;">
      <p style="margin: 0; color: #666; font-size: 12px;">EMAIL</p>
      <p style="margin: 5px 0 0 0; font-size: 16px; font-weight: bold; color: #333;">{{.Email}}</p>
    </div>
    <div style="background: white; padding: 20px; border-radius: 8px;">
      <p style="margin: 0; color: #666; font-size: 12px;">SOURCE</p>
      <p style="margin: 5px 0 0 0; font-size: 14px; color: #333;">{{.Source}}</p>
    </div>
  </div>
  <div style="padding: 20px; background: #f0f0f0; text-align: center;">
    <p style="margin: 0; color: #666; font-size: 12px;">Received: {{.ReceivedAt}}</p>
  </div>
</div>
`))

func renderAdminBody(data adminData) (string, error) {
	var b strings.Builder
	if err := adminTmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("failed to render admin mail: %w", err)
	}
	return b.String(), nil
}

func renderAckBody(data adminData) (string, error) {
	var b strings.Builder
	if err := ackTmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("failed to render ack mail: %w", err)
	}
	return b.String(), nil
}

func renderSubscribeBody(data subscribeData) (string, error) {
	var b strings.Builder
	if err := subscribeTmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("failed to render subscribe mail: %w", err)
	}
	return b.String(), nil
}
