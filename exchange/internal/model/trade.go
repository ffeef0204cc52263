package model

import "github.com/google/uuid"

// PossibleTrade is computed on every request and never stored.
type PossibleTrade struct {
	OfferedBookID uuid.UUID   `json:"offered_book_id"`
	OfferedBook   CatalogBook `json:"offered_book"`
	WantedBookID  uuid.UUID   `json:"wanted_book_id"`
	WantedBook    CatalogBook `json:"wanted_book"`
	TradePartner  User        `json:"trade_partner"`
}
