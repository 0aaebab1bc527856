package model

import "time"

// Compact reduces the forecast to fewer rows: the given day keeps hourly
// granularity, all other days are bucketed into 3-hour intervals keyed by
// the first timestamp in each bucket. Per bucket and model, temperature is
// averaged and precipitation summed; a bucket with no reported values stays
// unreported.
func (f *Forecast) Compact(today time.Time) {
	ty, tm, td := today.Date()

	newTimes := make([]time.Time, 0, len(f.Times))
	newSeries := make([]ModelSeries, len(f.Series))
	for i, s := range f.Series {
		newSeries[i] = ModelSeries{Model: s.Model}
	}

	i := 0
	for i < len(f.Times) {
		t := f.Times[i]
		y, m, d := t.Date()

		if y == ty && m == tm && d == td {
			newTimes = append(newTimes, t)
			for si := range f.Series {
				newSeries[si].Samples = append(newSeries[si].Samples, f.Series[si].Samples[i])
			}
			i++
			continue
		}

		// Bucket runs until the hour leaves the 3-hour window or the date changes.
		bucketEnd := t.Hour()/3*3 + 3
		j := i + 1
		for j < len(f.Times) {
			ny, nm, nd := f.Times[j].Date()
			if ny != y || nm != m || nd != d || f.Times[j].Hour() >= bucketEnd {
				break
			}
			j++
		}

		newTimes = append(newTimes, t)
		for si := range f.Series {
			newSeries[si].Samples = append(newSeries[si].Samples, aggregate(f.Series[si].Samples[i:j]))
		}
		i = j
	}

	f.Times = newTimes
	f.Series = newSeries
}

// aggregate folds a bucket of samples: mean temperature, summed precipitation.
func aggregate(samples []Sample) Sample {
	var tempSum, precipSum float64
	var tempN, precipN int
	for _, s := range samples {
		if s.Temp != nil {
			tempSum += *s.Temp
			tempN++
		}
		if s.Precip != nil {
			precipSum += *s.Precip
			precipN++
		}
	}

	var out Sample
	if tempN > 0 {
		avg := tempSum / float64(tempN)
		out.Temp = &avg
	}
	if precipN > 0 {
		out.Precip = &precipSum
	}
	return out
}
