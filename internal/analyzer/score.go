package analyzer

import (
	"math"

	"github.com/dijital/ragnostics/internal/domain"
)

// Fixed score weights. Penalties are subtracted from a base of 100 and the
// result is clamped to [0,100].
const (
	docStructuredPenalty = 60
	docImagePenalty      = 50
	docUnknownPenalty    = 40
	docCodePenalty       = 20
	docProseBonus        = 10

	queryCorrelationPenalty = 20
	queryHighPenalty        = 70
	queryMediumPenalty      = 30

	dirNoiseExtremePenalty = 60
	dirNoiseHighPenalty    = 30
	dirNoiseMediumPenalty  = 10
	dirCorrelationPenalty  = 40
	dirStructuredPenalty   = 50
	dirProblematicPenalty  = 30
)

// Verdict thresholds.
const (
	suitableThreshold = 70
	optimizeThreshold = 40
)

func clampScore(score float64) float64 {
	return math.Max(0, math.Min(100, score))
}

// DocumentScore scores a document batch. An empty batch scores 0: no
// corpus means nothing to retrieve from.
func DocumentScore(a *domain.DocumentAnalysis) float64 {
	if a == nil || a.TotalFiles == 0 {
		return 0
	}

	total := float64(a.TotalFiles)
	ratio := func(cat domain.FileCategory) float64 {
		return float64(a.CategoryCounts[cat]) / total
	}

	score := 100.0
	score -= ratio(domain.CategoryStructured) * docStructuredPenalty
	score -= ratio(domain.CategoryImage) * docImagePenalty
	score -= ratio(domain.CategoryUnknown) * docUnknownPenalty
	score -= ratio(domain.CategoryCode) * docCodePenalty
	score += (ratio(domain.CategoryPDF) + ratio(domain.CategoryText)) * docProseBonus

	return clampScore(score)
}

// QueryScore scores a query batch. An empty batch scores 100: the absence
// of sample queries is neutral, not a penalty.
func QueryScore(a *domain.QueryAnalysis) float64 {
	if a == nil || a.TotalQueries == 0 {
		return 100
	}

	high := 0
	medium := 0
	for _, q := range a.Queries {
		switch q.Complexity {
		case domain.ComplexityHigh:
			high++
		case domain.ComplexityMedium:
			medium++
		}
	}

	total := float64(a.TotalQueries)
	score := 100.0
	score -= float64(len(a.CorrelationAttempts)) * queryCorrelationPenalty
	score -= float64(high) / total * queryHighPenalty
	score -= float64(medium) / total * queryMediumPenalty

	return clampScore(score)
}

// DirectoryScore scores a scanned tree. A tree with no RAG-compatible
// files is forced to 0.
func DirectoryScore(stats *domain.DirectoryStats) float64 {
	if stats == nil {
		return 0
	}
	if stats.CategoryCounts[bucketCompatible] == 0 {
		return 0
	}

	score := 100.0
	switch stats.NoiseLevel {
	case domain.NoiseExtreme:
		score -= dirNoiseExtremePenalty
	case domain.NoiseHigh:
		score -= dirNoiseHighPenalty
	case domain.NoiseMedium:
		score -= dirNoiseMediumPenalty
	}

	if stats.CorrelationWarning {
		score -= dirCorrelationPenalty
	}

	total := float64(stats.TotalFiles)
	score -= float64(stats.CategoryCounts[bucketStructured]) / total * dirStructuredPenalty
	score -= float64(stats.CategoryCounts[bucketProblematic]) / total * dirProblematicPenalty

	return clampScore(score)
}

// OverallScore averages whichever sub-scores are present. Callers pass nil
// for analyses whose input was absent; with no inputs at all the overall
// score is 0.
func OverallScore(dir *domain.DirectoryStats, docs *domain.DocumentAnalysis, queries *domain.QueryAnalysis) float64 {
	var sum float64
	count := 0

	if dir != nil {
		sum += dir.Score
		count++
	}
	if docs != nil {
		sum += docs.Score
		count++
	}
	if queries != nil {
		sum += queries.Score
		count++
	}

	if count == 0 {
		return 0
	}
	return clampScore(sum / float64(count))
}

// VerdictFor maps an overall score to its feasibility tier.
func VerdictFor(score float64) domain.Verdict {
	switch {
	case score >= suitableThreshold:
		return domain.VerdictSuitable
	case score >= optimizeThreshold:
		return domain.VerdictWithOptimizing
	default:
		return domain.VerdictNotRecommended
	}
}
