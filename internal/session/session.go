package session

// Role distingue les trois espaces de la boutique. Toute valeur inconnue
// retombe sur client : on ne bloque jamais la navigation sur un rôle.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleSeller   Role = "seller"
	RoleAdmin    Role = "admin"
)

func ParseRole(s string) Role {
	switch Role(s) {
	case RoleSeller:
		return RoleSeller
	case RoleAdmin:
		return RoleAdmin
	default:
		return RoleCustomer
	}
}

// LandingPath donne la page d'atterrissage après login selon le rôle
func LandingPath(r Role) string {
	switch r {
	case RoleAdmin:
		return "/admin/dashboard"
	case RoleSeller:
		return "/seller/dashboard"
	default:
		return "/"
	}
}

// Session est le contexte utilisateur construit par le middleware d'auth
// et passé explicitement aux handlers via le contexte Gin — pas de
// globale mutable.
type Session struct {
	UserID string
	Email  string
	Role   Role
	Token  string // bearer token transmis tel quel à l'API commerce
}

func (s Session) Authenticated() bool {
	return s.UserID != "" && s.Token != ""
}
