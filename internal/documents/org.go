package documents

// Organization holds the fixed letterhead printed on every document.
type Organization struct {
	Name string
	// Address is printed when a Unicode font is configured, AddressLatin
	// otherwise.
	Address      string
	AddressLatin string
	Phone        string
	Email        string
	VerifyURL    string
}

// NVPWelfare is the foundation's letterhead.
var NVPWelfare = Organization{
	Name:         "NVP Welfare Foundation India",
	Address:      "नारायण निवास, बजरंग नगर, मोड़ा बालाजी रोड, दौसा, राजस्थान – 303303",
	AddressLatin: "Narayan Niwas, Bajrang Nagar, Moda Balaji Road, Dausa, Rajasthan – 303303",
	Phone:        "78776 43155",
	Email:        "nvpwfoundationindia@gmail.com",
	VerifyURL:    "nvpwelfare.in/verify",
}
