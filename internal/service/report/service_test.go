package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gastrodesk/backoffice-api/internal/domain/auth"
	"github.com/gastrodesk/backoffice-api/internal/domain/report"
	"github.com/gastrodesk/backoffice-api/internal/domain/user"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReportRepo struct {
	revenue    []report.LocalRevenue
	orders     []report.PlatformOrders
	attendance []report.DayAttendance
	err        error

	attendanceFrom, attendanceTo time.Time
}

func (f *fakeReportRepo) RevenueByLocal(ctx context.Context, from, to time.Time) ([]report.LocalRevenue, error) {
	return f.revenue, f.err
}

func (f *fakeReportRepo) OrdersByPlatform(ctx context.Context, from, to time.Time) ([]report.PlatformOrders, error) {
	return f.orders, f.err
}

func (f *fakeReportRepo) AttendanceByDay(ctx context.Context, from, to time.Time) ([]report.DayAttendance, error) {
	f.attendanceFrom, f.attendanceTo = from, to
	return f.attendance, f.err
}

var (
	rangeFrom = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	rangeTo   = time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
)

func names(reports []report.Report) []string {
	out := make([]string, len(reports))
	for i, r := range reports {
		out[i] = r.Name
	}
	return out
}

func TestGenerateReports_FiltersByPermission(t *testing.T) {
	svc := NewReportService(&fakeReportRepo{})
	ctx := context.Background()

	cases := []struct {
		role user.Role
		want []string
	}{
		{user.RoleAdmin, []string{report.NameBillingByLocal, report.NameOrdersByPlatform, report.NameWeeklyAttendance}},
		{user.RoleManager, []string{report.NameBillingByLocal, report.NameOrdersByPlatform, report.NameWeeklyAttendance}},
		{user.RoleWaiter, []string{report.NameOrdersByPlatform, report.NameWeeklyAttendance}},
		{user.Role("ghost"), []string{}},
	}
	for _, tc := range cases {
		t.Run(string(tc.role), func(t *testing.T) {
			got, err := svc.GenerateReports(ctx, auth.Session{UserID: "u1", Role: tc.role}, rangeFrom, rangeTo)
			require.NoError(t, err)
			assert.Equal(t, tc.want, names(got))
		})
	}

	got, err := svc.GenerateReports(ctx, auth.Session{Role: user.RoleAdmin}, rangeFrom, rangeTo)
	require.NoError(t, err)
	assert.Empty(t, got, "signed-out sessions see nothing")
}

func TestGenerateReports_Billing(t *testing.T) {
	repo := &fakeReportRepo{revenue: []report.LocalRevenue{
		{Local: "Palermo", Platform: "rappi", Revenue: decimal.RequireFromString("200.50")},
		{Local: "Centro", Platform: "pedidosya", Revenue: decimal.RequireFromString("100")},
		{Local: "Palermo", Platform: "pedidosya", Revenue: decimal.RequireFromString("50")},
	}}
	svc := NewReportService(repo)

	got, err := svc.GenerateReports(context.Background(), auth.Session{UserID: "u1", Role: user.RoleManager}, rangeFrom, rangeTo)
	require.NoError(t, err)
	billing := got[0].Data

	assert.Equal(t, []string{"Centro", "Palermo"}, billing.Labels)
	require.Len(t, billing.Datasets, 2)
	assert.Equal(t, report.Dataset{Label: "PedidosYa", Data: []float64{100, 50}}, billing.Datasets[0])
	assert.Equal(t, report.Dataset{Label: "Rappi", Data: []float64{0, 200.5}}, billing.Datasets[1])
}

func TestGenerateReports_OrdersByPlatform(t *testing.T) {
	repo := &fakeReportRepo{orders: []report.PlatformOrders{
		{Month: "2024-03", Platform: "mercadopago", Orders: 4},
		{Month: "2024-02", Platform: "pedidosya", Orders: 10},
		{Month: "2024-03", Platform: "pedidosya", Orders: 12},
	}}
	svc := NewReportService(repo)

	got, err := svc.GenerateReports(context.Background(), auth.Session{UserID: "u1", Role: user.RoleEmployee}, rangeFrom, rangeTo)
	require.NoError(t, err)
	require.Equal(t, report.NameOrdersByPlatform, got[0].Name)

	orders := got[0].Data
	assert.Equal(t, []string{"2024-02", "2024-03"}, orders.Labels)
	assert.Equal(t, []report.Dataset{
		{Label: "PedidosYa", Data: []float64{10, 12}},
		{Label: "MercadoPago", Data: []float64{0, 4}},
	}, orders.Datasets)
}

func TestGenerateReports_WeeklyAttendance(t *testing.T) {
	repo := &fakeReportRepo{attendance: []report.DayAttendance{
		{Date: time.Date(2024, 3, 25, 0, 0, 0, 0, time.UTC), Attended: 9, Total: 10}, // Monday
		{Date: time.Date(2024, 3, 27, 0, 0, 0, 0, time.UTC), Attended: 2, Total: 3},  // Wednesday
		{Date: time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC), Attended: 4, Total: 4},  // Sunday
	}}
	svc := NewReportService(repo)

	got, err := svc.GenerateReports(context.Background(), auth.Session{UserID: "u1", Role: user.RoleKitchen}, rangeFrom, rangeTo)
	require.NoError(t, err)
	weekly := got[len(got)-1]
	require.Equal(t, report.NameWeeklyAttendance, weekly.Name)

	assert.Equal(t, report.WeekdayLabels, weekly.Data.Labels)
	require.Len(t, weekly.Data.Datasets, 1)
	assert.Equal(t, report.WeeklyAttendanceLabel, weekly.Data.Datasets[0].Label)
	assert.Equal(t, []float64{90, 0, 66.7, 0, 0, 0, 100}, weekly.Data.Datasets[0].Data)

	assert.Equal(t, rangeTo.AddDate(0, 0, -7), repo.attendanceFrom)
	assert.Equal(t, rangeTo, repo.attendanceTo)
}

func TestGenerateReports_Errors(t *testing.T) {
	svc := NewReportService(&fakeReportRepo{err: errors.New("db down")})
	sess := auth.Session{UserID: "u1", Role: user.RoleAdmin}

	_, err := svc.GenerateReports(context.Background(), sess, rangeFrom, rangeTo)
	assert.Error(t, err)

	_, err = svc.GenerateReports(context.Background(), sess, rangeTo, rangeFrom)
	assert.ErrorIs(t, err, report.ErrInvalidRange)
}
