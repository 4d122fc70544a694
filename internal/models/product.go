package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Price accepte un nombre ou une chaîne numérique ("3.99") au décodage,
// certains anciens listings stockent le prix en chaîne.
type Price float64

func (p *Price) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if len(s) >= 2 && s[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		if str == "" {
			*p = 0
			return nil
		}
		f, err := strconv.ParseFloat(str, 64)
		if err != nil {
			return err
		}
		*p = Price(f)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*p = Price(f)
	return nil
}

// Product est un listing publié par un fermier (clé Redis `products`).
// Stock et Category sont optionnels : absents sur les anciens listings.
type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
	Price       Price  `json:"price"`
	Unit        string `json:"unit"`
	Stock       *int   `json:"stock,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
	FarmerID    string `json:"farmerId,omitempty"`
	FarmerName  string `json:"farmerName,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
}
