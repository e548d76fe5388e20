package jsonld

// LoginRequestContext is the default context merged into login request
// bodies that arrive without one.
var LoginRequestContext = map[string]any{
	"muAccount": "http://mu.semte.ch/vocabularies/account/",
	"pav":       "http://purl.org/pav/",
	"organization": map[string]any{
		"@id":   "pav:createdBy",
		"@type": "@id",
	},
	"key":       "muAccount:key",
	"publisher": "pav:providedBy",
	"uri": map[string]any{
		"@type": "@id",
		"@id":   "@id",
	},
}

// LoginRequestTypes are the default types assumed for login request bodies
// that do not declare their own.
var LoginRequestTypes = []any{
	"wotSec:APIKeySecurityScheme",
	"lblodAuth:LoginRequest",
}

// LoginResponseContext compacts the session document returned on a
// successful login.
var LoginResponseContext = map[string]any{
	"muAccount": "http://mu.semte.ch/vocabularies/account/",
	"mu":        "http://mu.semte.ch/vocabularies/core/",
	"xsd":       "http://www.w3.org/2001/XMLSchema#",
	"session":   "http://mu.semte.ch/vocabularies/session/",
	"dct":       "http://purl.org/dc/terms/",
	"uuid": map[string]any{
		"@id": "mu:uuid",
	},
	"account": map[string]any{
		"@id":   "muAccount:account",
		"@type": "@id",
	},
	"created": map[string]any{
		"@id": "dct:created",
	},
}

// LoginResponseFrame forces uuid, account and created to appear in the
// session document even when empty.
var LoginResponseFrame = map[string]any{
	"@context": LoginResponseContext,
	"uuid": map[string]any{
		"@embed": "@always",
	},
	"account": map[string]any{
		"@embed": "@always",
	},
	"created": map[string]any{
		"@embed": "@always",
	},
}

// ErrorResponseContext compacts error documents.
var ErrorResponseContext = map[string]any{
	"xsd":  "http://www.w3.org/2001/XMLSchema#",
	"oslc": "http://open-services.net/ns/core#",
	"mu":   "http://mu.semte.ch/vocabularies/core/",
	"uuid": map[string]any{
		"@id": "mu:uuid",
	},
	"errorMessage": map[string]any{
		"@id": "oslc:message",
	},
}

// ErrorResponseFrame forces uuid and errorMessage to appear in error
// documents.
var ErrorResponseFrame = map[string]any{
	"@context": ErrorResponseContext,
	"uuid": map[string]any{
		"@embed": "@always",
	},
	"errorMessage": map[string]any{
		"@embed": "@always",
	},
}
