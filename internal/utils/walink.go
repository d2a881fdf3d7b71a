package utils

import (
	"net/url"
	"strings"
)

const waBaseURL = "https://wa.me/"

// PackageOrderMessage is the prefix of the message sent when ordering a specific package
const PackageOrderMessage = "Halo, saya ingin memesan layanan "

// uriComponentUnescapes undoes the QueryEscape escapes that encodeURIComponent leaves alone
var uriComponentUnescapes = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EncodeURIComponent percent-encodes s like JavaScript's encodeURIComponent:
// spaces become %20 and !'()* stay literal.
func EncodeURIComponent(s string) string {
	return uriComponentUnescapes.Replace(url.QueryEscape(s))
}

// WhatsAppLink builds the wa.me deep link for a number and a free-text message.
func WhatsAppLink(number, message string) string {
	return waBaseURL + number + "?text=" + EncodeURIComponent(message)
}

// PackageOrderLink builds the deep link used by a pricing package's order button.
func PackageOrderLink(number, packageName string) string {
	return WhatsAppLink(number, PackageOrderMessage+packageName)
}
