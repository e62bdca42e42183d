package mongodb

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"

	"github.com/timetable-editor/internal/domain"
)

const (
	trainsCollection   = "trains"
	stationsCollection = "stations"
	stopTrainsField    = "stop_trains"
)

type platformDocument struct {
	Arrival   string `bson:"arrival,omitempty"`
	Departure string `bson:"departure,omitempty"`
}

func newPlatformDocument(p *domain.Platform) *platformDocument {
	if p.IsZero() {
		return nil
	}
	return &platformDocument{Arrival: p.Arrival, Departure: p.Departure}
}

func (p *platformDocument) toDomain() *domain.Platform {
	if p == nil || (p.Arrival == "" && p.Departure == "") {
		return nil
	}
	return &domain.Platform{Arrival: p.Arrival, Departure: p.Departure}
}

type connectionDocument struct {
	Kind    string `bson:"kind"`
	Station string `bson:"station"`
	Train   string `bson:"train"`
}

type stopDocument struct {
	StationID      string            `bson:"stationId"`
	Arrival        string            `bson:"arrival,omitempty"`
	Departure      string            `bson:"departure,omitempty"`
	Platform       *platformDocument `bson:"platform,omitempty"`
	SuccessorTrain string            `bson:"successorTrain,omitempty"`
}

type trainDocument struct {
	ID            string              `bson:"_id"`
	Type          string              `bson:"type"`
	Name          string              `bson:"name,omitempty"`
	OperationInfo string              `bson:"operationInfo"`
	Direction     string              `bson:"direction"`
	Company       string              `bson:"company"`
	Origin        string              `bson:"origin,omitempty"`
	Destination   string              `bson:"destination,omitempty"`
	Connection    *connectionDocument `bson:"connection,omitempty"`
	Stops         []stopDocument      `bson:"stops"`
}

func newTrainDocument(t *domain.Train) trainDocument {
	doc := trainDocument{
		ID:            t.TrainNumber,
		Type:          t.Type,
		Name:          t.Name,
		OperationInfo: string(t.OperationInfo),
		Direction:     string(t.Direction),
		Company:       string(t.Company),
		Origin:        t.Origin,
		Destination:   t.Destination,
		Stops:         make([]stopDocument, 0, len(t.Stops)),
	}
	if t.Connection != nil {
		doc.Connection = &connectionDocument{
			Kind:    string(t.Connection.Kind),
			Station: t.Connection.Station,
			Train:   t.Connection.Train,
		}
	}
	for _, s := range t.Stops {
		doc.Stops = append(doc.Stops, stopDocument{
			StationID:      s.StationID,
			Arrival:        s.Arrival,
			Departure:      s.Departure,
			Platform:       newPlatformDocument(s.Platform),
			SuccessorTrain: s.SuccessorTrain,
		})
	}
	return doc
}

func (d trainDocument) toDomain() *domain.Train {
	t := &domain.Train{
		TrainNumber:   d.ID,
		Type:          d.Type,
		Name:          d.Name,
		OperationInfo: domain.OperationInfo(d.OperationInfo),
		Direction:     domain.Direction(d.Direction),
		Company:       domain.Company(d.Company),
		Origin:        d.Origin,
		Destination:   d.Destination,
		Stops:         make([]domain.Stop, 0, len(d.Stops)),
	}
	if d.Connection != nil {
		t.Connection = &domain.ConnectionInfo{
			Kind:    domain.ConnectionKind(d.Connection.Kind),
			Station: d.Connection.Station,
			Train:   d.Connection.Train,
		}
	}
	for _, s := range d.Stops {
		t.Stops = append(t.Stops, domain.Stop{
			StationID:      s.StationID,
			Arrival:        s.Arrival,
			Departure:      s.Departure,
			Platform:       s.Platform.toDomain(),
			SuccessorTrain: s.SuccessorTrain,
		})
	}
	return t
}

// entryDocument - запись поезда в документе станции, каноническая схема
type entryDocument struct {
	TrainID        string            `bson:"trainId"`
	OperationInfo  string            `bson:"operationInfo"`
	Arrival        string            `bson:"arrival,omitempty"`
	Departure      string            `bson:"departure,omitempty"`
	Platform       *platformDocument `bson:"platform,omitempty"`
	SuccessorTrain string            `bson:"successorTrain,omitempty"`
}

func newEntryDocuments(entries []domain.StationStopEntry) []entryDocument {
	docs := make([]entryDocument, 0, len(entries))
	for _, e := range entries {
		docs = append(docs, entryDocument{
			TrainID:        e.TrainID,
			OperationInfo:  string(e.OperationInfo),
			Arrival:        e.Arrival,
			Departure:      e.Departure,
			Platform:       newPlatformDocument(e.Platform),
			SuccessorTrain: e.SuccessorTrain,
		})
	}
	return docs
}

// storedEntryDocument читает и каноническую схему, и старые варианты:
// time/time_arrival, строковый platform, track.*, platform_arrival/platform_departure,
// next_trainId и day.
type storedEntryDocument struct {
	TrainID        string            `bson:"trainId"`
	OperationInfo  string            `bson:"operationInfo"`
	Arrival        string            `bson:"arrival"`
	Departure      string            `bson:"departure"`
	Platform       bson.RawValue     `bson:"platform"`
	SuccessorTrain string            `bson:"successorTrain"`
	Day            string            `bson:"day"`
	Time           string            `bson:"time"`
	TimeArrival    string            `bson:"time_arrival"`
	Track          *platformDocument `bson:"track"`
	PlatformArr    string            `bson:"platform_arrival"`
	PlatformDep    string            `bson:"platform_departure"`
	NextTrainID    string            `bson:"next_trainId"`
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func (d storedEntryDocument) toDomain() domain.StationStopEntry {
	entry := domain.StationStopEntry{
		TrainID:        d.TrainID,
		OperationInfo:  domain.OperationInfo(firstNonEmpty(d.OperationInfo, d.Day)),
		Arrival:        firstNonEmpty(d.Arrival, d.TimeArrival),
		Departure:      firstNonEmpty(d.Departure, d.Time),
		SuccessorTrain: firstNonEmpty(d.SuccessorTrain, d.NextTrainID),
	}

	var platform *domain.Platform
	switch d.Platform.Type {
	case bsontype.EmbeddedDocument:
		var p platformDocument
		if err := d.Platform.Unmarshal(&p); err == nil {
			platform = p.toDomain()
		}
	case bsontype.String:
		// плоский номер пути относится к отправлению, у конечной - к прибытию
		if flat := d.Platform.StringValue(); flat != "" {
			if entry.Departure != "" {
				platform = &domain.Platform{Departure: flat}
			} else {
				platform = &domain.Platform{Arrival: flat}
			}
		}
	}
	if platform == nil {
		platform = d.Track.toDomain()
	}
	if platform == nil && (d.PlatformArr != "" || d.PlatformDep != "") {
		platform = &domain.Platform{Arrival: d.PlatformArr, Departure: d.PlatformDep}
	}
	entry.Platform = platform

	return entry
}

type stationDocument struct {
	ID         string                `bson:"_id"`
	Name       string                `bson:"name"`
	NameEn     string                `bson:"name_en,omitempty"`
	Order      int                   `bson:"order"`
	StopTrains []storedEntryDocument `bson:"stop_trains"`
}

func (d stationDocument) toDomain() domain.Station {
	return domain.Station{ID: d.ID, Name: d.Name, NameEn: d.NameEn, Order: d.Order}
}

func (d stationDocument) entries() []domain.StationStopEntry {
	out := make([]domain.StationStopEntry, 0, len(d.StopTrains))
	for _, e := range d.StopTrains {
		out = append(out, e.toDomain())
	}
	return out
}
