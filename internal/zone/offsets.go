package zone

import "time"

// OffsetHours samples the UTC offset of id, in hours, every step starting at from.
// It is used to chart daylight-saving transitions.
func (r *Resolver) OffsetHours(id string, from time.Time, step time.Duration, samples int) ([]float64, error) {
	loc, err := r.Location(id)
	if err != nil {
		return nil, err
	}
	out := make([]float64, samples)
	for i := range out {
		_, off := from.Add(time.Duration(i) * step).In(loc).Zone()
		out[i] = float64(off) / 3600
	}
	return out, nil
}
