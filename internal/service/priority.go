package service

import "github.com/shenikar/incident_dispatch/internal/models"

// Urgency вычисляет срочность инцидента: severity*10 + reportCount*2.
// Время с момента создания в оценку не входит.
func Urgency(severity, reportCount int) float64 {
	return float64(severity*10 + reportCount*2)
}

// MergeSort - устойчивая сортировка слиянием. less(a, b) == true означает, что a идёт раньше b;
// равные элементы сохраняют исходный порядок. Исходный срез не изменяется.
func MergeSort[T any](items []T, less func(a, b T) bool) []T {
	if len(items) <= 1 {
		return append([]T(nil), items...)
	}

	mid := len(items) / 2
	left := MergeSort(items[:mid], less)
	right := MergeSort(items[mid:], less)

	return merge(left, right, less)
}

func merge[T any](left, right []T, less func(a, b T) bool) []T {
	out := make([]T, 0, len(left)+len(right))
	i, j := 0, 0
	for i < len(left) && j < len(right) {
		// правый берётся только если он строго раньше левого
		if less(right[j], left[i]) {
			out = append(out, right[j])
			j++
		} else {
			out = append(out, left[i])
			i++
		}
	}
	out = append(out, left[i:]...)
	return append(out, right[j:]...)
}

// urgencyFirst: по убыванию срочности, при равенстве - раньше созданный
func urgencyFirst(a, b *models.Incident) bool {
	if a.UrgencyScore != b.UrgencyScore {
		return a.UrgencyScore > b.UrgencyScore
	}
	return a.CreatedAt.Before(b.CreatedAt)
}

// recentFirst: по убыванию времени последнего изменения (для завершённых - время закрытия)
func recentFirst(a, b *models.Incident) bool {
	if !a.UpdatedAt.Equal(b.UpdatedAt) {
		return a.UpdatedAt.After(b.UpdatedAt)
	}
	return a.CreatedAt.After(b.CreatedAt)
}

// RankByUrgency упорядочивает активные инциденты для операторов
func RankByUrgency(incidents []*models.Incident) []*models.Incident {
	return MergeSort(incidents, urgencyFirst)
}

// RankByRecency упорядочивает архив от самых свежих
func RankByRecency(incidents []*models.Incident) []*models.Incident {
	return MergeSort(incidents, recentFirst)
}
