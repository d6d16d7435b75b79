package domain

// Classify reconciles a dependency's current state against the available
// versions and determines the latest applicable update under the requested
// scope and snapshot policy.
//
// For a fixed current version the newest reachable candidate wins. For a
// range, the lookup anchors on the newest version inside the range and then
// reaches outward; a candidate still contained in the range is not reported,
// because staying within a declared range is not an update.
func Classify(
	coordinate ArtifactCoordinate,
	current Current,
	available []string,
	scope UpdateScope,
	allowSnapshots bool,
) ClassificationResult {
	result := ClassificationResult{Coordinate: coordinate, Current: current.String()}
	switch cur := current.(type) {
	case Fixed:
		result.Latest = newestUpdate(string(cur), available, scope, allowSnapshots)
	case Range:
		newest := newestInRange(cur, available, allowSnapshots)
		if newest == "" {
			break
		}
		latest := newestUpdate(newest, available, scope, allowSnapshots)
		if latest != "" && cur.Contains(latest) {
			latest = ""
		}
		result.Latest = latest
	}
	return result
}

// newestUpdate returns the newest available version reachable from current
// under the scope, or "" when none qualifies.
func newestUpdate(current string, available []string, scope UpdateScope, allowSnapshots bool) string {
	best := ""
	for _, v := range available {
		if !allowSnapshots && IsSnapshot(v) {
			continue
		}
		if !scope.Allows(current, v) {
			continue
		}
		if best == "" || Compare(v, best) > 0 {
			best = v
		}
	}
	return best
}

// newestInRange returns the newest available version satisfying the range,
// or "" when none does.
func newestInRange(r Range, available []string, allowSnapshots bool) string {
	best := ""
	for _, v := range available {
		if !allowSnapshots && IsSnapshot(v) {
			continue
		}
		if !r.Contains(v) {
			continue
		}
		if best == "" || Compare(v, best) > 0 {
			best = v
		}
	}
	return best
}
