package schedule

import "time"

// LeastLoaded picks the technician with the fewest active appointments on
// day's calendar date. technicianIDs must be ordered ascending; the scan is
// stable and keeps the first minimum, so among equally loaded technicians
// the lowest id wins. Returns 0 when the list is empty.
func LeastLoaded(technicianIDs []uint64, day time.Time, snap *Snapshot) uint64 {
	var (
		best     uint64
		bestLoad int
	)
	for i, id := range technicianIDs {
		load := snap.LoadOn(id, day)
		if i == 0 || load < bestLoad {
			best, bestLoad = id, load
		}
	}
	return best
}
