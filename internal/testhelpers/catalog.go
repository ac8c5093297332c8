package testhelpers

import (
	"github.com/myrjola/droneconfigurator/internal/catalog"
	"github.com/myrjola/droneconfigurator/internal/models"
)

func allPlatforms() []string {
	return []string{"quad-scout", "quad-surveyor", "quad-inspector", "hex-carrier", "octo-commander"}
}

// CatalogData returns the same dataset as internal/sqlite/fixtures.sql. Compatibility lists follow the declaration
// order of the items they reference.
func CatalogData() catalog.Data {
	return catalog.Data{
		Scenarios: []models.Scenario{
			{ID: "security", Name: "Охрана", Description: "Наблюдение, патрулирование и охрана территорий", Icon: "shield"},
			{ID: "geodesy", Name: "Геодезия", Description: "Картографирование, создание 3D-моделей местности", Icon: "map"},
			{ID: "inspection", Name: "Инспекция", Description: "Обследование и мониторинг объектов инфраструктуры", Icon: "search"},
			{ID: "agriculture", Name: "Сельское хозяйство", Description: "Мониторинг полей, опрыскивание и анализ посевов", Icon: "leaf"},
			{ID: "construction", Name: "Строительство", Description: "Мониторинг строительных площадок, контроль хода работ", Icon: "building"},
			{ID: "emergency", Name: "Чрезвычайные ситуации", Description: "Поиск и спасение, оценка ущерба, планирование операций", Icon: "alarm"},
		},
		Platforms: []models.Platform{
			{
				ID:          "quad-scout",
				Name:        "Квадрокоптер Scout",
				Description: "Компактный и легкий дрон для простых задач наблюдения и мониторинга",
				ImagePath:   "/static/placeholder.svg",
				BasePrice:   150000,
				FlightTime:  25,
				MaxSpeed:    60,
				Range:       5,
				Scenarios:   []string{"security", "inspection"},
			},
			{
				ID:          "quad-surveyor",
				Name:        "Квадрокоптер Surveyor",
				Description: "Профессиональная модель для геодезических съемок и точного картографирования",
				ImagePath:   "/static/placeholder.svg",
				BasePrice:   350000,
				FlightTime:  35,
				MaxSpeed:    50,
				Range:       7,
				Scenarios:   []string{"geodesy", "agriculture", "construction"},
			},
			{
				ID:          "quad-inspector",
				Name:        "Квадрокоптер Inspector",
				Description: "Специализированная модель для инспекции объектов инфраструктуры",
				ImagePath:   "/static/placeholder.svg",
				BasePrice:   280000,
				FlightTime:  30,
				MaxSpeed:    55,
				Range:       6,
				Scenarios:   []string{"inspection", "construction"},
			},
			{
				ID:          "hex-carrier",
				Name:        "Гексакоптер Carrier",
				Description: "Мощный гексакоптер для перевозки тяжелых грузов и оборудования",
				ImagePath:   "/static/placeholder.svg",
				BasePrice:   450000,
				FlightTime:  40,
				MaxSpeed:    45,
				Range:       8,
				Scenarios:   []string{"agriculture", "emergency"},
			},
			{
				ID:          "octo-commander",
				Name:        "Октокоптер Commander",
				Description: "Высокопроизводительный октокоптер для сложных и критически важных операций",
				ImagePath:   "/static/placeholder.svg",
				BasePrice:   680000,
				FlightTime:  45,
				MaxSpeed:    40,
				Range:       10,
				Scenarios:   []string{"security", "inspection", "emergency"},
			},
		},
		Payloads: []models.Payload{
			{
				ID:                  "camera-4k",
				Name:                "Камера 4K",
				Description:         "Стандартная 4K камера для съемки высокого качества",
				Price:               45000,
				Weight:              250,
				CompatiblePlatforms: allPlatforms(),
			},
			{
				ID:                  "camera-thermal",
				Name:                "Тепловизионная камера",
				Description:         "Тепловизор для ночного наблюдения и поиска источников тепла",
				Price:               120000,
				Weight:              350,
				CompatiblePlatforms: []string{"quad-inspector", "hex-carrier", "octo-commander"},
			},
			{
				ID:                  "lidar",
				Name:                "LiDAR сканер",
				Description:         "Лазерный сканер для создания точных 3D-моделей местности",
				Price:               180000,
				Weight:              500,
				CompatiblePlatforms: []string{"quad-surveyor", "hex-carrier", "octo-commander"},
			},
			{
				ID:                  "multispectral",
				Name:                "Мультиспектральная камера",
				Description:         "Камера для анализа состояния растительности в различных спектрах",
				Price:               150000,
				Weight:              400,
				CompatiblePlatforms: []string{"quad-surveyor", "hex-carrier", "octo-commander"},
			},
			{
				ID:                  "speaker",
				Name:                "Громкоговоритель",
				Description:         "Система оповещения для передачи информации с воздуха",
				Price:               25000,
				Weight:              300,
				CompatiblePlatforms: []string{"hex-carrier", "octo-commander"},
			},
		},
		PowerSources: []models.PowerSource{
			{
				ID:                  "battery-standard",
				Name:                "Стандартный аккумулятор",
				Description:         "Базовый аккумулятор для небольших полетных заданий",
				Price:               15000,
				Capacity:            5000,
				Weight:              400,
				CompatiblePlatforms: []string{"quad-scout", "quad-surveyor", "quad-inspector"},
			},
			{
				ID:                  "battery-extended",
				Name:                "Увеличенный аккумулятор",
				Description:         "Аккумулятор повышенной емкости для длительных полетов",
				Price:               25000,
				Capacity:            7500,
				Weight:              600,
				CompatiblePlatforms: []string{"quad-scout", "quad-surveyor", "quad-inspector", "hex-carrier"},
			},
			{
				ID:                  "battery-pro",
				Name:                "Профессиональный аккумулятор",
				Description:         "Высокопроизводительный аккумулятор для интенсивного использования",
				Price:               40000,
				Capacity:            10000,
				Weight:              800,
				CompatiblePlatforms: []string{"hex-carrier", "octo-commander"},
			},
		},
		Accessories: []models.Accessory{
			{
				ID:                  "case",
				Name:                "Транспортировочный кейс",
				Description:         "Защитный кейс для безопасной транспортировки дрона",
				Price:               20000,
				CompatiblePlatforms: allPlatforms(),
			},
			{
				ID:                  "spare-propellers",
				Name:                "Запасные пропеллеры",
				Description:         "Набор запасных пропеллеров для быстрой замены в полевых условиях",
				Price:               8000,
				CompatiblePlatforms: allPlatforms(),
			},
			{
				ID:                  "controller-pro",
				Name:                "Профессиональный пульт управления",
				Description:         "Расширенный пульт с дополнительными функциями и увеличенной дальностью",
				Price:               35000,
				CompatiblePlatforms: []string{"quad-surveyor", "hex-carrier", "octo-commander"},
			},
			{
				ID:                  "ground-station",
				Name:                "Наземная станция управления",
				Description:         "Комплект оборудования для профессионального управления дроном",
				Price:               120000,
				CompatiblePlatforms: []string{"hex-carrier", "octo-commander"},
			},
			{
				ID:                  "training",
				Name:                "Обучение оператора",
				Description:         "Курс обучения для оператора дрона (16 часов)",
				Price:               45000,
				CompatiblePlatforms: allPlatforms(),
			},
		},
		StandardPackages: []models.StandardPackage{
			{Scenario: "security", Platform: "quad-scout", Payload: "camera-4k", PowerSource: "battery-standard"},
			{Scenario: "geodesy", Platform: "quad-surveyor", Payload: "lidar", PowerSource: "battery-extended"},
			{Scenario: "inspection", Platform: "quad-inspector", Payload: "camera-4k", PowerSource: "battery-standard"},
			{Scenario: "agriculture", Platform: "quad-surveyor", Payload: "multispectral", PowerSource: "battery-extended"},
		},
	}
}

// NewCatalog returns a catalog built from CatalogData.
func NewCatalog() *catalog.Catalog {
	return catalog.New(CatalogData())
}
