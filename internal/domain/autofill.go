package domain

import "errors"

var (
	ErrNoSeedTime       = errors.New("no departure time to start autofill from")
	ErrUnknownDirection = errors.New("direction is unknown")
)

// IntervalTable - минуты хода от станции до следующей по направлению движения
type IntervalTable map[string]int

// StandardIntervals - стандартное время хода между станциями
var StandardIntervals = map[Direction]IntervalTable{
	DirectionDown: {
		"karuizawa": 4, "naka-karuizawa": 3, "shinano-oiwake": 4, "miyota": 4, "hirahara": 4,
		"komoro": 3, "shigeno": 3, "tanaka": 3, "ohya": 4, "ueda": 3, "nishi-ueda": 3,
		"sakaki-techno": 3, "sakaki": 4, "togura": 3, "chikuma": 3, "yashiro": 2, "yashiro-koukou-mae": 4,
		"shinonoi": 3, "imai": 3, "kawanakajima": 3, "amori": 3,
		"nagano": 3, "kita-nagano": 3, "sansai": 4, "toyono": 6, "mure": 5, "furuma": 4, "kurohime": 6,
	},
	DirectionUp: {
		"myoko-kogen": 6, "kurohime": 4, "furuma": 5, "mure": 6, "toyono": 4, "sansai": 3, "kita-nagano": 3,
		"nagano": 3, "amori": 3, "kawanakajima": 3, "imai": 3,
		"shinonoi": 4, "yashiro-koukou-mae": 2, "yashiro": 3, "chikuma": 3, "togura": 4, "sakaki": 3,
		"sakaki-techno": 3, "nishi-ueda": 3, "ueda": 4, "ohya": 3, "tanaka": 3, "shigeno": 3,
		"komoro": 4, "hirahara": 4, "miyota": 4, "shinano-oiwake": 3, "naka-karuizawa": 4,
	},
}

// IntervalsFor возвращает таблицу для направления
func IntervalsFor(direction Direction) (IntervalTable, error) {
	table, ok := StandardIntervals[direction]
	if !ok {
		return nil, ErrUnknownDirection
	}
	return table, nil
}

// AutofillTimes заполняет время по стандартной таблице направления
func AutofillTimes(rows []EditorRow, direction Direction) error {
	table, err := IntervalsFor(direction)
	if err != nil {
		return err
	}
	return AutofillWith(rows, table)
}

// AutofillWith заполняет время по цепочке отмеченных строк, начиная с первого
// введенного отправления. Время пишется в поле, которое показано в строке:
// у конечной без второго времени это прибытие. Цепочка прерывается на первой
// неотмеченной строке; станция без интервала пропускается.
func AutofillWith(rows []EditorRow, intervals IntervalTable) error {
	seed, current := -1, 0
	for i, r := range rows {
		if r.Departure == "" {
			continue
		}
		if minutes, ok := ParseClock(r.Departure); ok {
			seed, current = i, minutes
			break
		}
	}
	if seed < 0 {
		return ErrNoSeedTime
	}

	for i := seed; i < len(rows)-1; i++ {
		if !rows[i].Checked || !rows[i+1].Checked {
			break
		}
		interval, ok := intervals[rows[i].StationID]
		if !ok || interval <= 0 {
			continue
		}
		current = (current + interval) % minutesPerDay
		*timeFieldOf(&rows[i+1]) = FormatClock(current)
	}
	return nil
}

// timeFieldOf - поле времени строки для автозаполнения. Строка, для которой
// ShapeRows не вызывался, получает отправление.
func timeFieldOf(r *EditorRow) *string {
	if r.Fields.Arrival && !r.Fields.Departure {
		return &r.Arrival
	}
	return &r.Departure
}
