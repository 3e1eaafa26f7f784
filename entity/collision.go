package entity

// CollisionPass runs collision callbacks over entities and returns the number
// of pair comparisons it made. World uses BruteForce unless replaced with
// SetCollisionPass.
type CollisionPass func(entities []Entity) int

// BruteForce tests every unordered pair once. For overlapping boxes a.Collide(b)
// runs when a's mask accepts b's class, and independently b.Collide(a) when b's
// mask accepts a's class. Each entity's box is taken once before its row of
// comparisons.
//
// The pass is O(n^2) and meant for the few dozen objects of a level.
func BruteForce(entities []Entity) int {
	if len(entities) < 2 {
		return 0
	}

	comparisons := 0
	for i := 0; i < len(entities)-1; i++ {
		a := entities[i]
		boxA := a.BoundingBox()
		for _, b := range entities[i+1:] {
			comparisons++
			if !boxA.Overlaps(b.BoundingBox()) {
				continue
			}
			if a.CollisionMask()&b.CollisionClass() != 0 {
				a.Collide(b)
			}
			if b.CollisionMask()&a.CollisionClass() != 0 {
				b.Collide(a)
			}
		}
	}
	return comparisons
}
