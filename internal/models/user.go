package models

// Rôles disponibles sur la marketplace
const (
	RoleFarmer = "farmer"
	RoleBuyer  = "buyer"
)

// User est l'entrée complète de l'annuaire (clé Redis `farm-users`).
// ⚠️ Mot de passe en clair : c'est une démo, aucune sécurité réelle.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Address  string `json:"address,omitempty"`
	Phone    string `json:"phone,omitempty"`
	JoinDate string `json:"joinDate"`
}

// Session est l'utilisateur connecté, sans le mot de passe (clé `farm-user:<id>`).
type Session struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Address  string `json:"address,omitempty"`
	Phone    string `json:"phone,omitempty"`
	JoinDate string `json:"joinDate"`
}

// SessionFrom dérive une session d'une entrée annuaire (mot de passe exclu)
func SessionFrom(u User) Session {
	return Session{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		Role:     u.Role,
		Address:  u.Address,
		Phone:    u.Phone,
		JoinDate: u.JoinDate,
	}
}

// ProfilePatch est une mise à jour partielle du profil.
// Seuls les champs non-nil sont appliqués ; le mot de passe n'est jamais patchable.
type ProfilePatch struct {
	Name    *string `json:"name,omitempty"`
	Email   *string `json:"email,omitempty"`
	Address *string `json:"address,omitempty"`
	Phone   *string `json:"phone,omitempty"`
}

// Apply fusionne le patch dans l'entrée annuaire
func (p ProfilePatch) Apply(u *User) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Address != nil {
		u.Address = *p.Address
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
}
