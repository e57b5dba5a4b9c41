package stats

import (
	"math"
)

// Mean возвращает среднее арифметическое выборки.
// Для пустой выборки возвращает 0.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// StdDev возвращает стандартное отклонение генеральной совокупности
func StdDev(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	mean := Mean(values)
	sumSquares := 0.0
	for _, v := range values {
		d := v - mean
		sumSquares += d * d
	}
	return math.Sqrt(sumSquares / float64(len(values)))
}

// ZScore возвращает z-score кандидата относительно окна прошлых значений.
// Меньше двух выборок или нулевая дисперсия - возвращает 0 (fail open).
func ZScore(window []float64, candidate float64) float64 {
	if len(window) < 2 {
		return 0
	}
	std := StdDev(window)
	if std == 0 {
		return 0
	}
	return (candidate - Mean(window)) / std
}

// IsOutlier проверяет, является ли кандидат статистическим выбросом
// относительно окна. При нулевой дисперсии окна z-score не определен,
// и вместо него используется относительное отклонение от среднего:
// |candidate-mean| > threshold*max(|mean|, 1).
func IsOutlier(window []float64, candidate, threshold float64) bool {
	if len(window) < 2 {
		return false
	}

	std := StdDev(window)
	mean := Mean(window)

	if std == 0 {
		scale := math.Max(math.Abs(mean), 1)
		return math.Abs(candidate-mean) > threshold*scale
	}

	return math.Abs((candidate-mean)/std) > threshold
}
