package domain

import (
	"regexp"
	"strings"
)

var trainIDPattern = regexp.MustCompile(`^(\d+)([A-Z])$`)

// IdentifierAnalysis - то, что можно вывести из номера поезда
type IdentifierAnalysis struct {
	TrainID     string    `json:"train_id"`
	Valid       bool      `json:"valid"`
	Direction   Direction `json:"direction"`
	Company     Company   `json:"company"`
	CompanyName string    `json:"company_name"`
	Label       string    `json:"label"`
}

var companyBySuffix = map[string]Company{
	"M": CompanyShinanoRailway,
	"D": CompanyJRIiyama,
}

// NormalizeTrainID приводит ввод оператора к виду номера поезда
func NormalizeTrainID(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// AnalyzeIdentifier разбирает номер вида "1611M": четный номер - up,
// нечетный - down, буква определяет компанию. Неподходящий номер
// не является ошибкой: возвращается результат с Label "unknown".
func AnalyzeIdentifier(trainID string) IdentifierAnalysis {
	match := trainIDPattern.FindStringSubmatch(trainID)
	if match == nil {
		return IdentifierAnalysis{
			TrainID:     trainID,
			Direction:   DirectionNone,
			Company:     CompanyNone,
			CompanyName: CompanyNone.DisplayName(),
			Label:       "unknown",
		}
	}

	digits, suffix := match[1], match[2]

	// четность определяется последней цифрой, длина номера не ограничена
	direction := DirectionDown
	if (digits[len(digits)-1]-'0')%2 == 0 {
		direction = DirectionUp
	}

	company, ok := companyBySuffix[suffix]
	if !ok {
		company = CompanyUnknown
	}

	return IdentifierAnalysis{
		TrainID:     trainID,
		Valid:       true,
		Direction:   direction,
		Company:     company,
		CompanyName: company.DisplayName(),
		Label:       direction.Label(),
	}
}
