package interfaces

import "context"

// INicknameClient resolves the in-game nickname for an account id.
// It returns an empty name when the account does not exist.
type INicknameClient interface {
	Lookup(ctx context.Context, game, userID, zoneID string) (string, error)
}
