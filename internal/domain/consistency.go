package domain

// ConsistencyReport - результат сравнения записи поезда с записями станций.
// Отчет только описывает расхождения, ничего не исправляет.
type ConsistencyReport struct {
	TrainID           string   `json:"train_id"`
	TrainExists       bool     `json:"train_exists"`
	Consistent        bool     `json:"consistent"`
	MissingEntries    []string `json:"missing_entries"`
	StaleEntries      []string `json:"stale_entries"`
	DuplicateEntries  []string `json:"duplicate_entries"`
	MismatchedEntries []string `json:"mismatched_entries"`
}

// CompareTrainWithEntries проверяет, что для каждой остановки поезда на станции
// есть ровно одна равная ей запись, и что на прочих станциях записей нет.
// entries - все записи станций (по id станции), train может быть nil.
func CompareTrainWithEntries(trainID string, train *Train, stations []Station, entries map[string][]StationStopEntry) ConsistencyReport {
	report := ConsistencyReport{
		TrainID:           trainID,
		TrainExists:       train != nil,
		MissingEntries:    []string{},
		StaleEntries:      []string{},
		DuplicateEntries:  []string{},
		MismatchedEntries: []string{},
	}

	for _, st := range SortedCopy(stations) {
		var own []StationStopEntry
		for _, e := range entries[st.ID] {
			if e.TrainID == trainID {
				own = append(own, e)
			}
		}

		stop := train.StopAt(st.ID)
		switch {
		case stop == nil && len(own) > 0:
			report.StaleEntries = append(report.StaleEntries, st.ID)
		case stop == nil:
		case len(own) == 0:
			report.MissingEntries = append(report.MissingEntries, st.ID)
		case len(own) > 1:
			report.DuplicateEntries = append(report.DuplicateEntries, st.ID)
		case !own[0].Equal(NewStationStopEntry(train, *stop)):
			report.MismatchedEntries = append(report.MismatchedEntries, st.ID)
		}
	}

	report.Consistent = len(report.MissingEntries) == 0 &&
		len(report.StaleEntries) == 0 &&
		len(report.DuplicateEntries) == 0 &&
		len(report.MismatchedEntries) == 0
	return report
}
