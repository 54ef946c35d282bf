package report

import (
	"strings"

	"routerstat/internal/management"
)

// saslDisplayNames maps SASL mechanisms to the names operators know them by.
var saslDisplayNames = map[string]string{
	"GSSAPI":   "Kerberos",
	"EXTERNAL": "x.509",
}

// ConnectionAuth summarizes how a connection authenticated.
func ConnectionAuth(conn management.Entity) string {
	if !conn.Attr("isAuthenticated").Bool() {
		return "no-auth"
	}

	mech := conn.Attr("sasl").String()
	if mech == "ANONYMOUS" {
		return "anonymous-user"
	}
	if display, ok := saslDisplayNames[mech]; ok {
		mech = display
	}

	user := conn.Attr("user")
	if !user.IsSet() || user.String() == "" {
		return mech
	}
	return user.String() + "(" + mech + ")"
}

// ConnectionSecurity summarizes the transport security of a connection.
func ConnectionSecurity(conn management.Entity) string {
	if !conn.Attr("isEncrypted").Bool() {
		return "no-security"
	}
	if conn.Attr("sasl").String() == "GSSAPI" {
		return "Kerberos"
	}
	return conn.Attr("sslProto").String() + "(" + conn.Attr("sslCipher").String() + ")"
}

// StripTrailingSlash removes exactly one trailing slash. Unset values
// yield "".
func StripTrailingSlash(text management.Value) string {
	if !text.IsSet() {
		return ""
	}
	return strings.TrimSuffix(text.String(), "/")
}

// CleanIdentity returns override when set, "-" when identity is unset, and
// otherwise the part of identity after its first slash.
func CleanIdentity(identity, override management.Value) string {
	if override.IsSet() {
		return override.String()
	}
	if !identity.IsSet() {
		return "-"
	}
	id := identity.String()
	if pos := strings.Index(id, "/"); pos >= 0 {
		return id[pos+1:]
	}
	return id
}

// StringifyList converts each element for display, keeping order.
func StringifyList(items []any) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = management.FormatScalar(item)
	}
	return out
}
