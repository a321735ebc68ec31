package email

import "fmt"

// ApprovalEmail builds the message sent when a vendor application is
// approved. The temporary password is shown once and never stored.
func ApprovalEmail(businessName, loginEmail, tempPassword string) (subject, body string) {
	subject = "Your seller application has been approved"
	body = fmt.Sprintf(`<p>Hello %s,</p>
<p>Congratulations! Your seller application has been approved and your store is now live.</p>
<p>Sign in to your seller dashboard with:</p>
<ul>
<li>Email: <strong>%s</strong></li>
<li>Temporary password: <strong>%s</strong></li>
</ul>
<p>Please change your password after your first login.</p>
<p>The GreenHub Team</p>`, businessName, loginEmail, tempPassword)
	return subject, body
}

// RejectionEmail builds the message sent when an application is rejected
func RejectionEmail(businessName string) (subject, body string) {
	subject = "Update on your seller application"
	body = fmt.Sprintf(`<p>Hello %s,</p>
<p>Thank you for applying to sell on GreenHub. After reviewing your application and documents we are unable to approve it at this time.</p>
<p>You are welcome to reapply once the issues with your submission are resolved.</p>
<p>The GreenHub Team</p>`, businessName)
	return subject, body
}

// SuspensionEmail builds the message sent when a live vendor is suspended
func SuspensionEmail(businessName string) (subject, body string) {
	subject = "Your seller account has been suspended"
	body = fmt.Sprintf(`<p>Hello %s,</p>
<p>Your seller account has been suspended and your listings are no longer visible to customers.</p>
<p>Please contact support for details on reinstating your account.</p>
<p>The GreenHub Team</p>`, businessName)
	return subject, body
}

// ReactivationEmail builds the message sent when a suspended vendor is restored
func ReactivationEmail(businessName string) (subject, body string) {
	subject = "Your seller account has been reactivated"
	body = fmt.Sprintf(`<p>Hello %s,</p>
<p>Good news! Your seller account has been reactivated and your listings are visible to customers again.</p>
<p>The GreenHub Team</p>`, businessName)
	return subject, body
}
