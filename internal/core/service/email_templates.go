package service

import "html/template"

// Transactional mail bodies. Kept as inline templates; the markup matches
// the tone of the rest of the platform's mail.

var otpTemplate = template.Must(template.New("otp").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #333;">Verify Your Email</h2>
  <p>Hello,</p>
  <p>Your verification code is:</p>
  <p style="font-size: 28px; font-weight: bold; letter-spacing: 4px;">{{.Code}}</p>
  <p>This code expires in one minute. If you did not request it, you can ignore this email.</p>
  <p>Best regards,<br>The Team</p>
</div>`))

var welcomeTemplate = template.Must(template.New("welcome").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #333;">Welcome Aboard!</h2>
  <p>Hello {{.Name}},</p>
  <p>Thank you for joining our platform. We're excited to have you with us!</p>
  <p>If you have any questions, feel free to contact our support team.</p>
  <p>Best regards,<br>The Team</p>
</div>`))

var passwordResetTemplate = template.Must(template.New("reset").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #333;">Reset Your Password</h2>
  <p>Hello {{.Name}},</p>
  <p>We received a request to reset your password. Click the link below to reset it:</p>
  <p><a href="{{.Link}}" style="display: inline-block; padding: 10px 20px; background-color: #3498db; color: white; text-decoration: none; border-radius: 4px;">Reset Password</a></p>
  <p>If you didn't request this, you can safely ignore this email.</p>
  <p>Best regards,<br>The Team</p>
</div>`))

var jobSeekerTemplate = template.Must(template.New("jobseeker").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #333;">Candidate Profile: {{.Name}}</h2>
  <p>Skills: {{range $i, $s := .Skills}}{{if $i}}, {{end}}{{$s}}{{end}}</p>
  {{if .Details}}<p>{{.Details}}</p>{{end}}
  <p>Contact: <a href="mailto:{{.ContactEmail}}">{{.ContactEmail}}</a></p>
  <p>Best regards,<br>The Team</p>
</div>`))

var jobOpportunityTemplate = template.Must(template.New("opportunity").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #333;">{{.JobTitle}} at {{.Company}}</h2>
  <p>Location: {{.Location}}</p>
  <p>{{.Description}}</p>
  <p>Interested? Contact <a href="mailto:{{.ContactEmail}}">{{.ContactEmail}}</a></p>
  <p>Best regards,<br>The Team</p>
</div>`))

var supportTemplate = template.Must(template.New("support").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #333;">Support Request</h2>
  <p><strong>From:</strong> {{.FirstName}} {{.LastName}} ({{.Email}})</p>
  <p><strong>Company:</strong> {{.Company}}</p>
  <p><strong>Issue:</strong> {{.IssueType}} &mdash; priority {{.Priority}}</p>
  <p>{{.Message}}</p>
</div>`))
