package documents

import "errors"

// Certificate template geometry, landscape A4 in millimetres.
const (
	certCenterX = 148.5
	certAwardW  = 200.0
)

// CertificateLayout places c on a landscape page inside a double border.
// Type and issue date are optional; number and recipient are not.
func (r *Renderer) CertificateLayout(c Certificate) (Layout, error) {
	if err := errors.Join(
		required("certificate number", c.Number),
		required("recipient name", c.RecipientName),
	); err != nil {
		return Layout{}, err
	}

	l := newLayout(Landscape)

	l.rect(RoleBorderOuter, 10, 10, 277, 190, 2)
	l.rect(RoleBorderInner, 15, 15, 267, 180, 0.5)

	l.centered(RoleTitle, certCenterX, 40, Font{Size: 32, Bold: true}, black, "CERTIFICATE")
	if c.Type != "" {
		l.centered(RoleSubtitle, certCenterX, 55, Font{Size: 16}, black, "of "+c.Type)
	}
	l.line(RoleDivider, 80, 60, 217, 60, 0.5)

	l.centered(RoleCertifyPhrase, certCenterX, 75, Font{Size: 14}, black, "This is to certify that")
	l.centered(RoleRecipient, certCenterX, 90, Font{Size: 24, Bold: true}, black, c.RecipientName)

	award := Font{Size: 12}
	l.text(RoleAward, certCenterX, 105, award, AlignCenter, black,
		r.wrap("has been awarded this certificate by "+r.org.Name, certAwardW, award)...)

	small := Font{Size: 10}
	l.centered(RoleNumber, certCenterX, 125, small, black, "Certificate Number: "+c.Number)
	l.centered(RoleIssueDate, certCenterX, 135, small, black, "Issue Date: "+r.date(c.IssueDate))

	l.line(RoleSignatureLine, 180, 150, 240, 150, 0.5)
	l.centered(RoleSignatureCaption, 210, 155, small, black, "Authorized Signature")

	l.centered(RoleOrgName, certCenterX, 160, Font{Size: 12, Bold: true}, black, r.org.Name)
	l.centered(RoleOrgAddress, certCenterX, 167, Font{Size: 9}, black, r.address())
	l.centered(RoleContact, certCenterX, 173, Font{Size: 9}, black,
		"Phone: "+r.org.Phone+" | Email: "+r.org.Email)

	l.centered(RoleDisclaimer, certCenterX, 185, Font{Size: 8}, black,
		"This is a computer-generated certificate and does not require a signature.")

	return *l, nil
}
