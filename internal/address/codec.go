package address

import "fmt"

// Kind enumerates the closed set of address classes the router emits.
type Kind int

const (
	// None is the class of an empty or absent token.
	None Kind = iota
	Mobile
	Router
	Area
	Local
	Topo
	LinkIn
	LinkOut
	// Unknown is any tag character outside the known set. The raw
	// character is kept in Class.Tag.
	Unknown
)

// tags maps each known class to its single-character tag.
var tags = map[Kind]byte{
	Mobile:  'M',
	Router:  'R',
	Area:    'A',
	Local:   'L',
	Topo:    'T',
	LinkIn:  'C',
	LinkOut: 'D',
}

// Class is a decoded address class. Tag holds the raw tag character and is
// only meaningful for Unknown.
type Class struct {
	Kind Kind
	Tag  byte
}

// ClassFromTag returns the class for a tag character.
func ClassFromTag(tag byte) Class {
	switch tag {
	case 'M':
		return Class{Kind: Mobile, Tag: tag}
	case 'R':
		return Class{Kind: Router, Tag: tag}
	case 'A':
		return Class{Kind: Area, Tag: tag}
	case 'L':
		return Class{Kind: Local, Tag: tag}
	case 'T':
		return Class{Kind: Topo, Tag: tag}
	case 'C':
		return Class{Kind: LinkIn, Tag: tag}
	case 'D':
		return Class{Kind: LinkOut, Tag: tag}
	default:
		return Class{Kind: Unknown, Tag: tag}
	}
}

// String returns the display name of the class.
func (c Class) String() string {
	switch c.Kind {
	case None:
		return ""
	case Mobile:
		return "mobile"
	case Router:
		return "router"
	case Area:
		return "area"
	case Local:
		return "local"
	case Topo:
		return "topo"
	case LinkIn:
		return "link-in"
	case LinkOut:
		return "link-out"
	default:
		return fmt.Sprintf("unknown: %c", c.Tag)
	}
}

// Address is a decoded address token.
type Address struct {
	Class Class
	Phase string
	Text  string
}

// Decode splits a token into class, phase and text.
func Decode(token string) Address {
	if token == "" {
		return Address{}
	}

	class := ClassFromTag(token[0])
	if class.Kind == Mobile {
		return Address{
			Class: class,
			Phase: substr(token, 1, 2),
			Text:  substr(token, 2, len(token)),
		}
	}

	return Address{
		Class: class,
		Text:  token[1:],
	}
}

// Encode builds a token from its parts. Phase is only written for mobile
// addresses and defaults to "0" there. Encoding None yields the empty
// string.
func Encode(class Class, phase, text string) string {
	var tag byte
	switch class.Kind {
	case None:
		return ""
	case Unknown:
		tag = class.Tag
	default:
		tag = tags[class.Kind]
	}

	if class.Kind == Mobile {
		if phase == "" {
			phase = "0"
		}
		return string(tag) + phase[:1] + text
	}
	return string(tag) + text
}

// Summary renders the address the way the address and link tables show it.
func (a Address) Summary() string {
	switch a.Class.Kind {
	case None:
		return "-"
	case Mobile:
		if a.Phase == "0" {
			return a.Text
		}
		return a.Phase + ":" + a.Text
	default:
		return a.Class.String() + ":" + a.Text
	}
}

// ClassOf returns the display name of the token's class.
func ClassOf(token string) string {
	return Decode(token).Class.String()
}

// TextOf returns the address text of the token.
func TextOf(token string) string {
	return Decode(token).Text
}

// PhaseOf returns the phase of a mobile token, or "" for other classes.
func PhaseOf(token string) string {
	return Decode(token).Phase
}

// Summarize returns the compact display form of the token.
func Summarize(token string) string {
	return Decode(token).Summary()
}

func substr(s string, from, to int) string {
	if from >= len(s) {
		return ""
	}
	if to > len(s) {
		to = len(s)
	}
	return s[from:to]
}
