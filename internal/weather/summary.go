package weather

import "math"

// Summarize computes daily min/max/average statistics over a set of
// records. Temperature and humidity are required fields so their min/max
// always exist; averages and wind min/max cover only records where the
// optional field is present. The result does not depend on record order.
func Summarize(city string, records []WeatherRecord) *Summary {
	s := &Summary{
		City:        city,
		TempMin:     records[0].Temperature,
		TempMax:     records[0].Temperature,
		HumidityMin: records[0].Humidity,
		HumidityMax: records[0].Humidity,
	}

	var (
		sumFeelsLike float64
		nFeelsLike   int
		sumPressure  float64
		nPressure    int
		sumClouds    float64
		nClouds      int
		windMin      float64
		windMax      float64
		nWind        int
	)

	for i := range records {
		r := &records[i]

		s.TempMin = math.Min(s.TempMin, r.Temperature)
		s.TempMax = math.Max(s.TempMax, r.Temperature)
		s.HumidityMin = math.Min(s.HumidityMin, r.Humidity)
		s.HumidityMax = math.Max(s.HumidityMax, r.Humidity)

		if r.FeelsLike != nil {
			sumFeelsLike += *r.FeelsLike
			nFeelsLike++
		}
		if r.Pressure != nil {
			sumPressure += float64(*r.Pressure)
			nPressure++
		}
		if r.Clouds != nil {
			sumClouds += float64(*r.Clouds)
			nClouds++
		}
		if r.WindSpeed != nil {
			if nWind == 0 {
				windMin = *r.WindSpeed
				windMax = *r.WindSpeed
			} else {
				windMin = math.Min(windMin, *r.WindSpeed)
				windMax = math.Max(windMax, *r.WindSpeed)
			}
			nWind++
		}
	}

	if nFeelsLike > 0 {
		s.FeelsLikeAvg = ptr(round2(sumFeelsLike / float64(nFeelsLike)))
	}
	if nPressure > 0 {
		s.PressureAvg = ptr(round2(sumPressure / float64(nPressure)))
	}
	if nClouds > 0 {
		s.CloudinessAvg = ptr(round2(sumClouds / float64(nClouds)))
	}
	if nWind > 0 {
		s.WindSpeedMin = ptr(windMin)
		s.WindSpeedMax = ptr(windMax)
	}

	return s
}

// round2 rounds to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func ptr[T any](v T) *T {
	return &v
}
