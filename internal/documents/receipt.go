package documents

import "errors"

// Receipt template geometry, portrait A4 in millimetres.
const (
	receiptCenterX = 105.0
	labelX         = 20.0
	valueX         = 70.0
	firstRowY      = 90.0
	rowStep        = 8.0
	descriptionW   = 115.0

	contactYDonation = 185.0
	contactYOther    = 165.0
)

var (
	headerTeal   = RGB{15, 118, 110}
	stripStone   = RGB{250, 250, 249}
	bannerOrange = RGB{249, 115, 22}
)

// ReceiptLayout places rc on a portrait page under a coloured header band.
// Donation receipts get the 80G banner and push the footer down.
func (r *Renderer) ReceiptLayout(rc Receipt) (Layout, error) {
	if err := errors.Join(
		required("receipt number", rc.Number),
		required("recipient name", rc.RecipientName),
		validAmount(rc.Amount),
	); err != nil {
		return Layout{}, err
	}

	l := newLayout(Portrait)

	l.filled(RoleHeaderBand, 0, 0, 210, 40, headerTeal)
	l.centered(RoleOrgName, receiptCenterX, 20, Font{Size: 24, Bold: true}, white, r.org.Name)
	l.centered(RoleOrgAddress, receiptCenterX, 30, Font{Size: 12}, white, r.address())

	l.centered(RoleTitle, receiptCenterX, 55, Font{Size: 20, Bold: true}, black, "RECEIPT")

	l.rect(RoleDetailsBox, 15, 65, 180, 80, 0.5)
	l.filled(RoleNumberStrip, 15, 65, 180, 15, stripStone)
	l.text(RoleNumber, labelX, 75, Font{Size: 12, Bold: true}, AlignLeft, black, "Receipt No: "+rc.Number)

	label := Font{Size: 11}
	bold := Font{Size: 11, Bold: true}
	y := firstRowY
	row := func(name string, role Role, f Font, lines ...string) {
		l.text(RoleLabel, labelX, y, label, AlignLeft, black, name)
		l.text(role, valueX, y, f, AlignLeft, black, lines...)
		y += rowStep
	}

	row("Receipt Type:", RoleType, bold, orDefault(rc.Type, "General"))
	row("Recipient Name:", RoleRecipient, bold, rc.RecipientName)
	row("Amount:", RoleAmount, Font{Size: 14, Bold: true}, FormatAmount(rc.Amount))
	row("Date:", RoleDate, label, r.date(rc.CreatedAt))
	row("Description:", RoleDescription, label,
		r.wrap(orDefault(rc.Description, placeholder), descriptionW, label)...)

	contactY := contactYOther
	if rc.IsDonation() {
		contactY = contactYDonation
		l.filled(RoleTaxBanner, 15, 155, 180, 20, bannerOrange)
		l.centered(RoleTaxEligible, receiptCenterX, 165, Font{Size: 10, Bold: true}, white,
			"This donation is eligible for 80G tax benefits")
		l.centered(RoleTaxRetain, receiptCenterX, 171, Font{Size: 9}, white,
			"Please retain this receipt for tax filing purposes")
	}

	l.centered(RoleContact, receiptCenterX, contactY, Font{Size: 9}, black,
		"Contact: "+r.org.Phone+" | Email: "+r.org.Email)
	l.centered(RoleDisclaimer, receiptCenterX, contactY+10, Font{Size: 8}, gray,
		"This is a computer-generated receipt and does not require a signature.")
	l.centered(RoleSupport, receiptCenterX, contactY+15, Font{Size: 8}, gray,
		"For queries, please contact us at the above details.")
	l.centered(RoleVerification, receiptCenterX, contactY+25, Font{Size: 9}, black,
		"Verify this receipt at "+r.org.VerifyURL)

	return *l, nil
}
