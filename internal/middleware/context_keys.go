package middleware

import "context"

// actorKey is the key used to store the authenticated actor's ID in the
// request context. The actor becomes CreatedBy/LastUpdatedBy on writes.
const actorKey = contextKey("actor")

// GetActorFromCtx retrieves the authenticated actor ID from the context.
// It returns the actor and a boolean indicating if it was found.
func GetActorFromCtx(ctx context.Context) (string, bool) {
	actor, ok := ctx.Value(actorKey).(string)
	if !ok || actor == "" {
		return "", false
	}
	return actor, true
}
