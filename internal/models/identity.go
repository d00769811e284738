package models

// IdentityKind tags the way a party is being identified.
type IdentityKind string

const (
	// IdentityKindCode identifies a party by its opaque invite code.
	IdentityKindCode IdentityKind = "code"
	// IdentityKindName identifies a party by one of its guests' names.
	IdentityKindName IdentityKind = "name"
	// IdentityKindParty identifies a party by its canonical party id,
	// used when the client already holds a looked-up party.
	IdentityKindParty IdentityKind = "party"
)

// PartyIdentity is the tagged union of the ways a guest can identify
// their party. When a request carries both a code and a name the code
// wins and the name is ignored.
type PartyIdentity struct {
	Kind      IdentityKind `json:"kind"`
	Code      string       `json:"code,omitempty"`
	PartyID   string       `json:"partyId,omitempty"`
	FirstName string       `json:"firstName,omitempty"`
	LastName  string       `json:"lastName,omitempty"`
}

// CodeIdentity builds an invite-code identity.
func CodeIdentity(code string) PartyIdentity {
	return PartyIdentity{Kind: IdentityKindCode, Code: code}
}

// NameIdentity builds a first/last name identity.
func NameIdentity(firstName, lastName string) PartyIdentity {
	return PartyIdentity{Kind: IdentityKindName, FirstName: firstName, LastName: lastName}
}

// PartyIDIdentity builds an identity from a canonical party id.
func PartyIDIdentity(partyID string) PartyIdentity {
	return PartyIdentity{Kind: IdentityKindParty, PartyID: partyID}
}

// String renders the identity for log lines without leaking anything
// beyond what the guest already typed.
func (id PartyIdentity) String() string {
	switch id.Kind {
	case IdentityKindCode:
		return "code:" + id.Code
	case IdentityKindName:
		return "name:" + id.FirstName + " " + id.LastName
	case IdentityKindParty:
		return "party:" + id.PartyID
	}
	return "unknown"
}
