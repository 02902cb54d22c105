package usecase

import "sync"

// lockStripes is the number of mutexes campaign ids are spread over.
const lockStripes = 256

// campaignLocks serializes mutations of one campaign. Ids share a fixed set
// of striped mutexes, so memory stays bounded however many ids callers
// send. Two campaigns on the same stripe only contend; a caller never holds
// more than one stripe.
type campaignLocks struct {
	stripes [lockStripes]sync.Mutex
}

func newCampaignLocks() *campaignLocks {
	return &campaignLocks{}
}

func (l *campaignLocks) stripe(id int64) *sync.Mutex {
	return &l.stripes[uint64(id)%lockStripes]
}

// lock acquires the campaign's mutex and returns its release func.
func (l *campaignLocks) lock(id int64) func() {
	m := l.stripe(id)
	m.Lock()
	return m.Unlock
}
