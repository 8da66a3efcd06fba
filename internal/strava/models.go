package strava

import "time"

// Optional fields are pointers so that a field Strava omitted stays
// distinguishable from a zero value. Unknown response fields are ignored.

// DetailedAthlete is the athlete profile returned by GET /athlete.
type DetailedAthlete struct {
	ID                    int64          `json:"id"`
	ResourceState         *int           `json:"resource_state"`
	Firstname             *string        `json:"firstname"`
	Lastname              *string        `json:"lastname"`
	ProfileMedium         *string        `json:"profile_medium"`
	Profile               *string        `json:"profile"`
	City                  *string        `json:"city"`
	State                 *string        `json:"state"`
	Country               *string        `json:"country"`
	Sex                   *string        `json:"sex"`
	Premium               *bool          `json:"premium"`
	Summit                *bool          `json:"summit"`
	CreatedAt             *time.Time     `json:"created_at"`
	UpdatedAt             *time.Time     `json:"updated_at"`
	FollowerCount         *int           `json:"follower_count"`
	FriendCount           *int           `json:"friend_count"`
	MeasurementPreference *string        `json:"measurement_preference"`
	FTP                   *int           `json:"ftp"`
	Weight                *float64       `json:"weight"`
	Clubs                 []SummaryClub  `json:"clubs"`
	Bikes                 []SummaryGear  `json:"bikes"`
	Shoes                 []SummaryGear  `json:"shoes"`
}

// SummaryClub is the club summary embedded in an athlete profile.
type SummaryClub struct {
	ID            int64   `json:"id"`
	ResourceState *int    `json:"resource_state"`
	Name          *string `json:"name"`
}

// SummaryGear is the gear summary embedded in an athlete profile.
type SummaryGear struct {
	ID            string   `json:"id"`
	ResourceState *int     `json:"resource_state"`
	Primary       *bool    `json:"primary"`
	Name          *string  `json:"name"`
	Distance      *float64 `json:"distance"`
}

// MetaAthlete identifies the owner of an activity.
type MetaAthlete struct {
	ID int64 `json:"id"`
}

// PolylineMap is the map summary embedded in an activity.
type PolylineMap struct {
	ID              string  `json:"id"`
	Polyline        *string `json:"polyline"`
	SummaryPolyline *string `json:"summary_polyline"`
}

// DetailedActivity is one activity as returned by GET /activities/{id} and,
// in summary form, by GET /athlete/activities.
type DetailedActivity struct {
	ID                   int64        `json:"id"`
	ExternalID           *string      `json:"external_id"`
	UploadIDStr          *string      `json:"upload_id_str"`
	Athlete              *MetaAthlete `json:"athlete"`
	Name                 *string      `json:"name"`
	Distance             *float64     `json:"distance"`
	MovingTime           *int         `json:"moving_time"`
	ElapsedTime          *int         `json:"elapsed_time"`
	TotalElevationGain   *float64     `json:"total_elevation_gain"`
	ElevHigh             *float64     `json:"elev_high"`
	ElevLow              *float64     `json:"elev_low"`
	Type                 *string      `json:"type"`
	SportType            *string      `json:"sport_type"`
	StartDate            *time.Time   `json:"start_date"`
	StartDateLocal       *time.Time   `json:"start_date_local"`
	Timezone             *string      `json:"timezone"`
	StartLatlng          []float64    `json:"start_latlng"`
	EndLatlng            []float64    `json:"end_latlng"`
	AchievementCount     *int         `json:"achievement_count"`
	KudosCount           *int         `json:"kudos_count"`
	CommentCount         *int         `json:"comment_count"`
	AthleteCount         *int         `json:"athlete_count"`
	PhotoCount           *int         `json:"photo_count"`
	TotalPhotoCount      *int         `json:"total_photo_count"`
	Map                  *PolylineMap `json:"map"`
	Trainer              *bool        `json:"trainer"`
	Commute              *bool        `json:"commute"`
	Manual               *bool        `json:"manual"`
	Private              *bool        `json:"private"`
	Flagged              *bool        `json:"flagged"`
	WorkoutType          *int         `json:"workout_type"`
	AverageSpeed         *float64     `json:"average_speed"`
	MaxSpeed             *float64     `json:"max_speed"`
	HasKudoed            *bool        `json:"has_kudoed"`
	HideFromHome         *bool        `json:"hide_from_home"`
	GearID               *string      `json:"gear_id"`
	Kilojoules           *float64     `json:"kilojoules"`
	AverageWatts         *float64     `json:"average_watts"`
	DeviceWatts          *bool        `json:"device_watts"`
	MaxWatts             *int         `json:"max_watts"`
	WeightedAverageWatts *int         `json:"weighted_average_watts"`
	Description          *string      `json:"description"`
	Calories             *float64     `json:"calories"`
	DeviceName           *string      `json:"device_name"`
	EmbedToken           *string      `json:"embed_token"`
}

// UpdatableActivity is the PUT /activities/{id} payload. Strava requires the
// preserved fields to be resupplied on every update, even when unchanged;
// fields absent on the fetched activity stay absent here.
type UpdatableActivity struct {
	Name         *string `json:"name,omitempty"`
	Commute      *bool   `json:"commute,omitempty"`
	Description  *string `json:"description,omitempty"`
	Type         *string `json:"type,omitempty"`
	GearID       *string `json:"gear_id,omitempty"`
	HideFromHome *bool   `json:"hide_from_home,omitempty"`
	Trainer      *bool   `json:"trainer,omitempty"`
	SportType    *string `json:"sport_type,omitempty"`
}
