package bungie

import (
	"context"
	"encoding/json"
	"errors"
)

// ErrMissingAccessToken is returned by actions that need an OAuth token when
// the client was built without WithAccessToken.
var ErrMissingAccessToken = errors.New("action requires an access token")

type DestinyItemTransferRequest struct {
	ItemReferenceHash uint32 `json:"itemReferenceHash"`
	StackSize         int    `json:"stackSize"`
	TransferToVault   bool   `json:"transferToVault"`
	ItemId            int64  `json:"itemId"`
	CharacterId       int64  `json:"characterId"`
	MembershipType    int    `json:"membershipType"`
}

// TransferItem moves an item between a character and the vault. The platform
// answers with an int that carries no meaning beyond success.
func (c *Client) TransferItem(ctx context.Context, req DestinyItemTransferRequest) error {
	if c.accessToken == "" {
		return ErrMissingAccessToken
	}
	body, err := json.Marshal(req)
	if err != nil {
		return err
	}
	_, err = postResponse[int](ctx, c, c.Endpoint("/Destiny2/Actions/Items/TransferItem/"), body)
	return err
}
