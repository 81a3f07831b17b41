package report

import (
	"time"

	"github.com/gastrodesk/backoffice-api/internal/domain/user"
	"github.com/shopspring/decimal"
)

const (
	NameBillingByLocal    = "Facturación por Local"
	NameOrdersByPlatform  = "Evolución de Pedidos por Plataforma"
	NameWeeklyAttendance  = "Asistencia Semanal"
	WeeklyAttendanceLabel = "Asistencia (%)"
)

// Definition ties a report name to the permission needed to see it.
type Definition struct {
	Name       string
	Permission user.Permission
}

// Definitions lists the reports in the order they are returned.
var Definitions = []Definition{
	{Name: NameBillingByLocal, Permission: user.PermissionViewBilling},
	{Name: NameOrdersByPlatform, Permission: user.PermissionViewDelivery},
	{Name: NameWeeklyAttendance, Permission: user.PermissionViewAttendance},
}

// WeekdayLabels are the Monday-first labels of the weekly attendance chart.
var WeekdayLabels = []string{"Lun", "Mar", "Mié", "Jue", "Vie", "Sáb", "Dom"}

// LocalRevenue is the revenue of one location on one platform.
type LocalRevenue struct {
	Local    string
	Platform string
	Revenue  decimal.Decimal
}

// PlatformOrders counts orders of one platform in one month ("YYYY-MM").
type PlatformOrders struct {
	Month    string
	Platform string
	Orders   int64
}

// DayAttendance counts attended and recorded attendances for one day.
type DayAttendance struct {
	Date     time.Time
	Attended int64
	Total    int64
}
