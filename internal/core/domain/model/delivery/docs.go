// Package delivery contains the Delivery aggregate root and its Status
// lifecycle. A delivery is a scheduled drop-off of furniture or material at a
// customer address, optionally bundled with a pickup of old material, moving
// through a status lifecycle from preparation to completion.
package delivery
