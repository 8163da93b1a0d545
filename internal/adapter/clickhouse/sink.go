// Package clickhouse implements the append-only analytics sink. Rows are
// inserted one per event; failures are wrapped in port.AnalyticsWriteError
// so the tracking pipeline can decide whether to swallow or propagate them.
package clickhouse

import (
	"context"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"

	"reklamito/internal/core/domain"
	"reklamito/internal/core/port"
)

// Sink writes show and click events over a native protocol connection.
type Sink struct {
	conn driver.Conn
}

// NewSink wraps an established connection; see db.NewClickHouseConn for
// construction.
func NewSink(conn driver.Conn) *Sink {
	return &Sink{conn: conn}
}

// LogShow appends one impression row.
func (s *Sink) LogShow(ctx context.Context, ev domain.ShowEvent) error {
	err := s.conn.Exec(ctx, `
        INSERT INTO shows (
            event_id, timestamp, banner_id, campaign_id, user_id, ip_address,
            user_agent, country, city, latitude, longitude, device_type,
            os_family, os_version, browser_family, browser_version,
            screen_width, screen_height, language, referer_domain,
            referer_path, is_robot, ad_position, ad_size, cost_model,
            session_id, network_type, connection_speed
        ) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		ev.EventID, ev.Timestamp, ev.BannerID, ev.CampaignID, ev.UserID,
		ev.IPAddress, ev.UserAgent, ev.Country, ev.City, ev.Latitude,
		ev.Longitude, enumPtr(ev.DeviceType), ev.OSFamily, ev.OSVersion,
		ev.BrowserFamily, ev.BrowserVersion, ev.ScreenWidth, ev.ScreenHeight,
		ev.Language, ev.RefererDomain, ev.RefererPath, ev.IsRobot,
		ev.AdPosition, ev.AdSize, enumPtr(ev.CostModel), ev.SessionID,
		enumPtr(ev.NetworkType), ev.ConnectionSpeed)
	if err != nil {
		return &port.AnalyticsWriteError{Table: "shows", Err: err}
	}
	return nil
}

// LogClick appends one click row.
func (s *Sink) LogClick(ctx context.Context, ev domain.ClickEvent) error {
	err := s.conn.Exec(ctx, `
        INSERT INTO clicks (
            show_event_id, timestamp, banner_id, campaign_id, click_x,
            click_y, element_id, element_class, referer_url, http_method,
            form_data, time_to_click, is_conversion, conversion_value,
            click_cost, button_type, click_depth, scroll_position, hover_time
        ) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		ev.ShowEventID, ev.Timestamp, ev.BannerID, ev.CampaignID, ev.ClickX,
		ev.ClickY, ev.ElementID, ev.ElementClass, ev.RefererURL, ev.HTTPMethod,
		ev.FormData, ev.TimeToClick, ev.IsConversion, ev.ConversionValue,
		ev.ClickCost, enumPtr(ev.ButtonType), ev.ClickDepth, ev.ScrollPosition,
		ev.HoverTime)
	if err != nil {
		return &port.AnalyticsWriteError{Table: "clicks", Err: err}
	}
	return nil
}

// enumPtr converts a typed string enum pointer into the plain *string the
// driver can bind to a Nullable(String) column.
func enumPtr[T ~string](v *T) *string {
	if v == nil {
		return nil
	}
	s := string(*v)
	return &s
}
