package service

import (
	"errors"

	"github.com/rewear/exchange/internal/model"
)

var ErrInvalidOfferSelection = errors.New("INVALID_OFFER_SELECTION")

type OfferKind int

const (
	OfferItem OfferKind = iota + 1
	OfferPoints
)

// Offer is the one-of-two payment for a swap request: an item from the
// requester's closet, or a points amount. It can only be built through
// NewOffer, so a request carrying both or neither never reaches the core.
type Offer struct {
	kind   OfferKind
	itemID int64
	points int64
}

func NewOffer(offeredItemID *int64, pointsOffered *int64) (Offer, error) {
	switch {
	case offeredItemID != nil && pointsOffered != nil:
		return Offer{}, ErrInvalidOfferSelection
	case offeredItemID != nil:
		if *offeredItemID <= 0 {
			return Offer{}, ErrInvalidOfferSelection
		}
		return Offer{kind: OfferItem, itemID: *offeredItemID}, nil
	case pointsOffered != nil:
		if *pointsOffered <= 0 {
			return Offer{}, ErrInvalidOfferSelection
		}
		return Offer{kind: OfferPoints, points: *pointsOffered}, nil
	default:
		return Offer{}, ErrInvalidOfferSelection
	}
}

func (o Offer) Kind() OfferKind { return o.kind }
func (o Offer) ItemID() int64   { return o.itemID }
func (o Offer) Points() int64   { return o.points }

type CreateSwapCommand struct {
	RequesterID int64
	ItemID      int64
	Offer       Offer
	Message     *string
}

type UpdateSwapStatusCommand struct {
	RequestID int64
	ActorID   int64
	Status    model.SwapStatus
}

type CancelSwapCommand struct {
	RequestID int64
	ActorID   int64
}

// SwapInbox splits a user's requests into the two dashboard views. A request
// appears in exactly one of them since requester and receiver always differ.
type SwapInbox struct {
	Incoming []model.SwapRequest `json:"incoming"`
	Outgoing []model.SwapRequest `json:"outgoing"`
}

type CreateItemCommand struct {
	UserID      int64
	CategoryID  int64
	Title       string
	Description string
	Size        string
	Condition   string
	PointValue  int64
	Tags        string
	Images      string
}

type RegisterCommand struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
}

type UpdateProfileCommand struct {
	UserID       int64
	FirstName    *string
	LastName     *string
	Bio          *string
	ProfileImage *string
}

type UserStats struct {
	ItemsListed     int64   `json:"items_listed"`
	SuccessfulSwaps int64   `json:"successful_swaps"`
	Rating          float64 `json:"rating"`
}

type PlatformStats struct {
	TotalUsers      int64 `json:"total_users"`
	ItemsListed     int64 `json:"items_listed"`
	SuccessfulSwaps int64 `json:"successful_swaps"`
}
