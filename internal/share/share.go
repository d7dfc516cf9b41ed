// Package share produces the credentials and artifacts used to invite
// people into a group trip: the share code, the join URL, a plain-text
// invitation and a QR code of the join URL.
package share

import (
	"bytes"
	"crypto/rand"
	"fmt"
	"math/big"
	"net/url"
	"strings"

	"github.com/mmynk/tripsplit/internal/currency"
	"github.com/mmynk/tripsplit/internal/models"
)

const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateCode returns a random share code of models.ShareCodeLength
// uppercase alphanumeric characters.
func GenerateCode() (string, error) {
	max := big.NewInt(int64(len(codeAlphabet)))
	code := make([]byte, models.ShareCodeLength)
	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate share code: %w", err)
		}
		code[i] = codeAlphabet[n.Int64()]
	}
	return string(code), nil
}

// NormalizeCode trims and upper-cases a user-entered code.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// JoinURL returns the link that opens the join flow for code.
func JoinURL(baseURL, code string) string {
	return strings.TrimRight(baseURL, "/") + "/groups?join=" + url.QueryEscape(code)
}

// Text renders the invitation message for trip.
func Text(trip *models.Trip, baseURL string) string {
	var b bytes.Buffer
	fmt.Fprintf(&b, "Join my trip %q on TripSplit!\n", trip.Name)
	if trip.Description != "" {
		fmt.Fprintf(&b, "%s\n", trip.Description)
	}
	fmt.Fprintf(&b, "Members: %d", len(trip.Members))
	if len(trip.Members) > 0 {
		names := make([]string, len(trip.Members))
		for i, m := range trip.Members {
			names[i] = m.Name
		}
		fmt.Fprintf(&b, " (%s)", strings.Join(names, ", "))
	}
	fmt.Fprintf(&b, "\nTotal so far: %s\n", currency.FormatCode(trip.TotalExpenses, trip.Currency))
	fmt.Fprintf(&b, "Share code: %s\n", trip.ShareCode)
	fmt.Fprintf(&b, "Join here: %s", JoinURL(baseURL, trip.ShareCode))
	return b.String()
}
