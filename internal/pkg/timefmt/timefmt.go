// Package timefmt renders timestamps in the NGO's operating timezone
// (IST). The program sheets and ledger rows all carry IST wall-clock
// strings, so formatting lives in one place.
package timefmt

import "time"

const Layout = "2006-01-02 15:04:05"

var ist = loadIST()

func loadIST() *time.Location {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		// Containers without tzdata still get the right offset.
		return time.FixedZone("IST", 5*3600+30*60)
	}
	return loc
}

func IST(t time.Time) string {
	return t.In(ist).Format(Layout)
}

func NowIST() string {
	return IST(time.Now())
}
