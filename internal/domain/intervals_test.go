package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2 июня 2025 - понедельник, 7-8 июня - выходные
func june(day, hour, min int) time.Time {
	return time.Date(2025, 6, day, hour, min, 0, 0, time.UTC)
}

func TestMergeAndClip(t *testing.T) {
	t.Run("clips intervals to window and drops outside ones", func(t *testing.T) {
		busy := []BusyInterval{
			{Start: june(2, 8, 0), End: june(2, 10, 0)},  // выходит за начало окна
			{Start: june(2, 16, 30), End: june(2, 19, 0)}, // выходит за конец окна
			{Start: june(2, 20, 0), End: june(2, 21, 0)},  // целиком вне окна
		}

		merged := MergeAndClip(busy, june(2, 9, 0), june(2, 17, 0))

		require.Len(t, merged, 2)
		assert.Equal(t, june(2, 9, 0), merged[0].Start)
		assert.Equal(t, june(2, 10, 0), merged[0].End)
		assert.Equal(t, june(2, 16, 30), merged[1].Start)
		assert.Equal(t, june(2, 17, 0), merged[1].End)
	})

	t.Run("merges overlapping intervals", func(t *testing.T) {
		busy := []BusyInterval{
			{Start: june(2, 13, 0), End: june(2, 14, 30)},
			{Start: june(2, 10, 0), End: june(2, 12, 0)},
			{Start: june(2, 11, 0), End: june(2, 13, 30)},
		}

		merged := MergeAndClip(busy, june(2, 9, 0), june(2, 17, 0))

		require.Len(t, merged, 1)
		assert.Equal(t, june(2, 10, 0), merged[0].Start)
		assert.Equal(t, june(2, 14, 30), merged[0].End)
	})

	t.Run("touching intervals stay separate", func(t *testing.T) {
		busy := []BusyInterval{
			{Start: june(2, 10, 0), End: june(2, 11, 0)},
			{Start: june(2, 11, 0), End: june(2, 12, 0)},
		}

		merged := MergeAndClip(busy, june(2, 9, 0), june(2, 17, 0))

		require.Len(t, merged, 2)
	})

	t.Run("empty busy list", func(t *testing.T) {
		merged := MergeAndClip(nil, june(2, 9, 0), june(2, 17, 0))
		assert.Empty(t, merged)
	})
}

func TestSliceWindow(t *testing.T) {
	t.Run("back to back slots of exact duration", func(t *testing.T) {
		slots := SliceWindow(june(2, 9, 0), june(2, 12, 0), 60)

		require.Len(t, slots, 3)
		assert.Equal(t, june(2, 9, 0), slots[0].Start)
		assert.Equal(t, june(2, 10, 0), slots[0].End)
		assert.Equal(t, june(2, 11, 0), slots[2].Start)
		for _, s := range slots {
			assert.Equal(t, 60, s.DurationMinutes)
			assert.True(t, s.Available)
		}
	})

	t.Run("no partial trailing slot", func(t *testing.T) {
		slots := SliceWindow(june(2, 9, 0), june(2, 10, 30), 60)

		require.Len(t, slots, 1)
		assert.Equal(t, june(2, 10, 0), slots[0].End)
	})

	t.Run("window shorter than duration", func(t *testing.T) {
		slots := SliceWindow(june(2, 9, 0), june(2, 9, 30), 60)
		assert.Empty(t, slots)
	})

	t.Run("non positive duration", func(t *testing.T) {
		assert.Empty(t, SliceWindow(june(2, 9, 0), june(2, 17, 0), 0))
		assert.Empty(t, SliceWindow(june(2, 9, 0), june(2, 17, 0), -30))
	})
}

func TestFreeSlotsForRange(t *testing.T) {
	now := june(1, 12, 0) // воскресенье накануне

	t.Run("empty calendar gives full working day", func(t *testing.T) {
		slots := FreeSlotsForRange(nil, june(3, 0, 0), june(4, 0, 0), 60, now)

		// Рабочий день 09:00-17:00 вмещает 8 часовых слотов
		require.Len(t, slots, 8)
		assert.Equal(t, june(3, 9, 0), slots[0].Start)
		assert.Equal(t, june(3, 16, 0), slots[7].Start)
		assert.Equal(t, june(3, 17, 0), slots[7].End)
	})

	t.Run("busy hour removes exactly one slot", func(t *testing.T) {
		busy := []BusyInterval{{Start: june(3, 10, 0), End: june(3, 11, 0)}}

		slots := FreeSlotsForRange(busy, june(3, 0, 0), june(4, 0, 0), 60, now)

		require.Len(t, slots, 7)
		assert.Equal(t, june(3, 9, 0), slots[0].Start)
		// Следующий после занятого часа слот начинается в 11:00
		assert.Equal(t, june(3, 11, 0), slots[1].Start)
	})

	t.Run("busy interval not aligned to slot grid", func(t *testing.T) {
		// Занятость 10:30-11:30 ломает сетку: до нее влезает только 09:00-10:00,
		// после нее слоты идут от 11:30
		busy := []BusyInterval{{Start: june(3, 10, 30), End: june(3, 11, 30)}}

		slots := FreeSlotsForRange(busy, june(3, 0, 0), june(4, 0, 0), 60, now)

		require.Len(t, slots, 6)
		assert.Equal(t, june(3, 9, 0), slots[0].Start)
		assert.Equal(t, june(3, 11, 30), slots[1].Start)
		assert.Equal(t, june(3, 15, 30), slots[5].Start)
	})

	t.Run("weekends are skipped", func(t *testing.T) {
		// Пятница 6 июня - понедельник 9 июня
		slots := FreeSlotsForRange(nil, june(6, 0, 0), june(10, 0, 0), 60, now)

		require.Len(t, slots, 16)
		for _, s := range slots {
			wd := s.Start.Weekday()
			assert.NotEqual(t, time.Saturday, wd)
			assert.NotEqual(t, time.Sunday, wd)
		}
		assert.Equal(t, june(6, 9, 0), slots[0].Start)
		assert.Equal(t, june(9, 9, 0), slots[8].Start)
	})

	t.Run("range end clips the last day", func(t *testing.T) {
		// Диапазон заканчивается в 12:00 - после полудня слотов нет
		slots := FreeSlotsForRange(nil, june(3, 0, 0), june(3, 12, 0), 60, now)

		require.Len(t, slots, 3)
		assert.Equal(t, june(3, 11, 0), slots[2].Start)
	})

	t.Run("only strictly future slots returned", func(t *testing.T) {
		// now ровно на границе слота 10:00 - слот 10:00 не проходит строгий фильтр
		slots := FreeSlotsForRange(nil, june(3, 0, 0), june(4, 0, 0), 60, june(3, 10, 0))

		require.Len(t, slots, 6)
		assert.Equal(t, june(3, 11, 0), slots[0].Start)
	})

	t.Run("fully busy day gives no slots", func(t *testing.T) {
		busy := []BusyInterval{{Start: june(3, 8, 0), End: june(3, 18, 0)}}

		slots := FreeSlotsForRange(busy, june(3, 0, 0), june(4, 0, 0), 60, now)

		assert.Empty(t, slots)
	})

	t.Run("thirty minute slots", func(t *testing.T) {
		busy := []BusyInterval{{Start: june(3, 9, 0), End: june(3, 16, 0)}}

		slots := FreeSlotsForRange(busy, june(3, 0, 0), june(4, 0, 0), 30, now)

		// Свободен только час 16:00-17:00 - два получасовых слота
		require.Len(t, slots, 2)
		assert.Equal(t, june(3, 16, 0), slots[0].Start)
		assert.Equal(t, june(3, 16, 30), slots[1].Start)
	})
}

func TestSlotKey(t *testing.T) {
	s := Slot{Start: june(3, 10, 0), End: june(3, 11, 0)}
	assert.Equal(t, "2025-06-03T10:00:00Z_2025-06-03T11:00:00Z", s.Key())
}

func TestUsedSlotSet(t *testing.T) {
	set := NewUsedSlotSet()
	a := Slot{Start: june(3, 10, 0), End: june(3, 11, 0)}
	b := Slot{Start: june(3, 11, 0), End: june(3, 12, 0)}

	assert.False(t, set.Contains(a))

	set.Add(a)

	assert.True(t, set.Contains(a))
	assert.False(t, set.Contains(b))
	assert.Equal(t, 1, set.Len())

	// Повторное добавление не меняет размер
	set.Add(a)
	assert.Equal(t, 1, set.Len())
}

func TestBusyIntervalOverlaps(t *testing.T) {
	b := BusyInterval{Start: june(3, 10, 0), End: june(3, 11, 0)}

	assert.True(t, b.Overlaps(june(3, 10, 30), june(3, 11, 30)))
	assert.True(t, b.Overlaps(june(3, 9, 0), june(3, 12, 0)))

	// Касание границами - не пересечение
	assert.False(t, b.Overlaps(june(3, 11, 0), june(3, 12, 0)))
	assert.False(t, b.Overlaps(june(3, 9, 0), june(3, 10, 0)))
}
