package redisx

import "fmt"

const ns = "storetix:v1"

// KeyCart is the durable snapshot of a session's cart items. Together with
// KeyUser it is the whole of the persisted state; checkout and organizer
// state never reach the store.
func KeyCart(sessionID string) string {
	return fmt.Sprintf("%s:cart:%s", ns, sessionID)
}

func KeyUser(sessionID string) string {
	return fmt.Sprintf("%s:user:%s", ns, sessionID)
}

func KeyEventSummary(slug string) string {
	return fmt.Sprintf("%s:event:%s:summary", ns, slug)
}

func KeyEventTiers(eventID string) string {
	return fmt.Sprintf("%s:event:%s:tiers", ns, eventID)
}

func KeyEventSeatMap(eventID string) string {
	return fmt.Sprintf("%s:event:%s:seatmap", ns, eventID)
}

func KeyRateLimit(scope, id string) string {
	return fmt.Sprintf("%s:rl:%s:%s", ns, scope, id)
}

func ChannelCatalogChanged() string {
	return ns + ":catalog:changed"
}
