package httpapi

import (
	"math"
	"time"

	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/domain/league"
	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/domain/microcycle"
	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/domain/physical"
	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/usecase"
)

// Distances are rounded to whole meters, everything else to two decimals.
func meters(v float64) float64 {
	return math.Round(v)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func isoDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

type collectiveBarsDTO struct {
	Jornadas        []string  `json:"jornadas"`
	Codigos         []string  `json:"codigos"`
	Partidos        []string  `json:"partidos"`
	Fechas          []string  `json:"fechas"`
	DistanciaTotal  []float64 `json:"distancia_total"`
	DistanciaHSR    []float64 `json:"distancia_hsr"`
	DistanciaSprint []float64 `json:"distancia_sprint"`
	Colores         []string  `json:"colores"`
	Resultados      []string  `json:"resultados"`
	NumJugadores    []int     `json:"num_jugadores"`
	PromedioTotal   float64   `json:"promedio_total"`
	PromedioHSR     float64   `json:"promedio_hsr"`
	PromedioSprint  float64   `json:"promedio_sprint"`
}

func collectiveBarsToDTO(bars usecase.CollectiveBars) collectiveBarsDTO {
	n := len(bars.Summaries)
	out := collectiveBarsDTO{
		Jornadas:        make([]string, 0, n),
		Codigos:         make([]string, 0, n),
		Partidos:        make([]string, 0, n),
		Fechas:          make([]string, 0, n),
		DistanciaTotal:  make([]float64, 0, n),
		DistanciaHSR:    make([]float64, 0, n),
		DistanciaSprint: make([]float64, 0, n),
		Colores:         make([]string, 0, n),
		Resultados:      make([]string, 0, n),
		NumJugadores:    make([]int, 0, n),
		PromedioTotal:   meters(bars.Means.Total),
		PromedioHSR:     meters(bars.Means.HSR),
		PromedioSprint:  meters(bars.Means.Sprint),
	}
	for _, s := range bars.Summaries {
		out.Jornadas = append(out.Jornadas, s.Round.String())
		out.Codigos = append(out.Codigos, s.OpponentCode)
		out.Partidos = append(out.Partidos, s.Match)
		out.Fechas = append(out.Fechas, isoDate(s.Date))
		out.DistanciaTotal = append(out.DistanciaTotal, meters(s.Means.Total))
		out.DistanciaHSR = append(out.DistanciaHSR, meters(s.Means.HSR))
		out.DistanciaSprint = append(out.DistanciaSprint, meters(s.Means.Sprint))
		out.Colores = append(out.Colores, s.Outcome.Color())
		out.Resultados = append(out.Resultados, s.Outcome.Label())
		out.NumJugadores = append(out.NumJugadores, s.Players)
	}
	return out
}

type matchOptionDTO struct {
	Partido string `json:"partido"`
	Fecha   string `json:"fecha"`
	Jornada string `json:"jornada"`
	Rival   string `json:"rival"`
	Label   string `json:"label"`
}

type matchListDTO struct {
	Partidos        []matchOptionDTO `json:"partidos"`
	PartidoReciente *string          `json:"partido_reciente"`
}

func matchOptionToDTO(m usecase.MatchOption) matchOptionDTO {
	return matchOptionDTO{
		Partido: m.Match,
		Fecha:   isoDate(m.Date),
		Jornada: m.Round.String(),
		Rival:   m.Opponent,
		Label:   m.Label,
	}
}

func matchListToDTO(list usecase.MatchList) matchListDTO {
	out := matchListDTO{Partidos: make([]matchOptionDTO, 0, len(list.Matches))}
	for _, m := range list.Matches {
		out.Partidos = append(out.Partidos, matchOptionToDTO(m))
	}
	if list.Latest != nil {
		latest := list.Latest.Match
		out.PartidoReciente = &latest
	}
	return out
}

type scatterPlayerDTO struct {
	Jugador         string  `json:"jugador"`
	MinutosJugados  float64 `json:"minutos_jugados"`
	DistanciaTotal  float64 `json:"distancia_total"`
	DistanciaHSR    float64 `json:"distancia_hsr"`
	DistanciaSprint float64 `json:"distancia_sprint"`
}

type individualScatterDTO struct {
	Jugadores    []scatterPlayerDTO `json:"jugadores"`
	Partido      matchOptionDTO     `json:"partido"`
	NumJugadores int                `json:"num_jugadores"`
	MeanX        float64            `json:"mean_x"`
	MeanY        float64            `json:"mean_y"`
}

func individualScatterToDTO(s usecase.IndividualScatter) individualScatterDTO {
	out := individualScatterDTO{
		Jugadores:    make([]scatterPlayerDTO, 0, len(s.Points)),
		Partido:      matchOptionToDTO(s.Match),
		NumJugadores: len(s.Points),
		MeanX:        meters(s.Means.Total),
		MeanY:        meters(s.Means.HSR),
	}
	for _, p := range s.Points {
		out.Jugadores = append(out.Jugadores, scatterPlayerDTO{
			Jugador:         p.Player,
			MinutosJugados:  math.Round(p.Minutes),
			DistanciaTotal:  meters(p.Meters.Total),
			DistanciaHSR:    meters(p.Meters.HSR),
			DistanciaSprint: meters(p.Meters.Sprint),
		})
	}
	return out
}

type leaderboardEntryDTO struct {
	Jugador          string   `json:"jugador"`
	DistanciaTotal   float64  `json:"distancia_total"`
	DistanciaHSR     float64  `json:"distancia_hsr"`
	DistanciaSprint  float64  `json:"distancia_sprint"`
	VelocidadMaxima  *float64 `json:"velocidad_maxima"`
	MinutosJugados   float64  `json:"minutos_jugados"`
	SegmentosJugados int      `json:"segmentos"`
}

type leaderboardDTO struct {
	Total  []leaderboardEntryDTO `json:"total"`
	HSR    []leaderboardEntryDTO `json:"hsr"`
	Sprint []leaderboardEntryDTO `json:"sprint"`
}

func leaderboardEntriesToDTO(items []physical.LeaderboardEntry) []leaderboardEntryDTO {
	out := make([]leaderboardEntryDTO, 0, len(items))
	for _, e := range items {
		dto := leaderboardEntryDTO{
			Jugador:          e.Player,
			DistanciaTotal:   meters(e.Means.Total),
			DistanciaHSR:     meters(e.Means.HSR),
			DistanciaSprint:  meters(e.Means.Sprint),
			MinutosJugados:   math.Round(e.Minutes),
			SegmentosJugados: e.Segments,
		}
		if e.MaxSpeed.Valid {
			speed := round2(e.MaxSpeed.V)
			dto.VelocidadMaxima = &speed
		}
		out = append(out, dto)
	}
	return out
}

func leaderboardToDTO(l usecase.IndividualLeaderboard) leaderboardDTO {
	return leaderboardDTO{
		Total:  leaderboardEntriesToDTO(l.ByTotal),
		HSR:    leaderboardEntriesToDTO(l.ByHSR),
		Sprint: leaderboardEntriesToDTO(l.BySprint),
	}
}

type evolutionDTO struct {
	Jornadas          []string  `json:"jornadas"`
	DistanciaTotal    []float64 `json:"distancia_total"`
	DistanciaHSR      []float64 `json:"distancia_hsr"`
	DistanciaSprint   []float64 `json:"distancia_sprint"`
	VelocidadMaxima   []float64 `json:"velocidad_maxima"`
	PromedioTotal     float64   `json:"promedio_total"`
	PromedioHSR       float64   `json:"promedio_hsr"`
	PromedioSprint    float64   `json:"promedio_sprint"`
	PromedioVelocidad float64   `json:"promedio_velocidad"`
}

func evolutionToDTO(e usecase.TeamEvolution) evolutionDTO {
	n := len(e.Points)
	out := evolutionDTO{
		Jornadas:          make([]string, 0, n),
		DistanciaTotal:    make([]float64, 0, n),
		DistanciaHSR:      make([]float64, 0, n),
		DistanciaSprint:   make([]float64, 0, n),
		VelocidadMaxima:   make([]float64, 0, n),
		PromedioTotal:     meters(e.Means.Total),
		PromedioHSR:       meters(e.Means.HSR),
		PromedioSprint:    meters(e.Means.Sprint),
		PromedioVelocidad: round2(e.MaxSpeedMean),
	}
	for _, p := range e.Points {
		out.Jornadas = append(out.Jornadas, p.Round.String())
		out.DistanciaTotal = append(out.DistanciaTotal, meters(p.Means.Total))
		out.DistanciaHSR = append(out.DistanciaHSR, meters(p.Means.HSR))
		out.DistanciaSprint = append(out.DistanciaSprint, meters(p.Means.Sprint))
		out.VelocidadMaxima = append(out.VelocidadMaxima, round2(p.MaxSpeed.Float()))
	}
	return out
}

type microcycleSummaryDTO struct {
	Jornada     int    `json:"jornada"`
	JornadaNum  string `json:"jornada_num"`
	Rival       string `json:"rival"`
	FechaInicio string `json:"fecha_inicio"`
	FechaFin    string `json:"fecha_fin"`
	Label       string `json:"label"`
}

type microcycleListDTO struct {
	Microciclos []microcycleSummaryDTO `json:"microciclos"`
}

func microcycleListToDTO(items []microcycle.Summary) microcycleListDTO {
	out := microcycleListDTO{Microciclos: make([]microcycleSummaryDTO, 0, len(items))}
	for _, s := range items {
		out.Microciclos = append(out.Microciclos, microcycleSummaryDTO{
			Jornada:     int(s.Round),
			JornadaNum:  s.Round.String(),
			Rival:       s.Opponent,
			FechaInicio: microcycle.FormatDate(s.FirstDay),
			FechaFin:    microcycle.FormatDate(s.LastDay),
			Label:       s.Label(),
		})
	}
	return out
}

type microcycleDTO struct {
	Situaciones        []string  `json:"situaciones"`
	Distancias         []float64 `json:"distancias"`
	NumRegistros       []int     `json:"num_registros"`
	Fechas             []string  `json:"fechas"`
	Tipos              []string  `json:"tipos"`
	TipoDistancia      string    `json:"tipo_distancia"`
	TipoDistanciaLabel string    `json:"tipo_distancia_label"`
	Jornada            string    `json:"jornada"`
	Rival              string    `json:"rival"`
	FechaInicio        string    `json:"fecha_inicio"`
	FechaFin           string    `json:"fecha_fin"`
	MicrocicloLabel    string    `json:"microciclo_label"`
}

func microcycleToDTO(m microcycle.Microcycle) microcycleDTO {
	n := len(m.Entries)
	out := microcycleDTO{
		Situaciones:        make([]string, 0, n),
		Distancias:         make([]float64, 0, n),
		NumRegistros:       make([]int, 0, n),
		Fechas:             make([]string, 0, n),
		Tipos:              make([]string, 0, n),
		TipoDistancia:      string(m.Kind),
		TipoDistanciaLabel: m.Kind.Label(),
		Jornada:            m.RequestedRound,
		Rival:              m.Opponent,
		FechaInicio:        microcycle.FormatDate(m.Start),
		FechaFin:           microcycle.FormatDate(m.End),
		MicrocicloLabel:    m.Label,
	}
	for _, e := range m.Entries {
		out.Situaciones = append(out.Situaciones, e.Label)
		out.Distancias = append(out.Distancias, meters(e.Value))
		out.NumRegistros = append(out.NumRegistros, e.Players)
		out.Fechas = append(out.Fechas, microcycle.FormatDate(e.Date))
		out.Tipos = append(out.Tipos, string(e.Kind))
	}
	return out
}

type rankingDTO struct {
	Metrica  string   `json:"metrica"`
	Nombre   string   `json:"nombre"`
	Valor    *float64 `json:"valor"`
	Posicion int      `json:"posicion"`
	Equipos  int      `json:"equipos"`
}

type globalRankingDTO struct {
	Equipo   string       `json:"equipo"`
	Equipos  int          `json:"equipos"`
	Rankings []rankingDTO `json:"rankings"`
}

func globalRankingToDTO(g usecase.GlobalRanking) globalRankingDTO {
	out := globalRankingDTO{
		Equipo:   g.Team,
		Equipos:  g.Teams,
		Rankings: make([]rankingDTO, 0, len(g.Rankings)),
	}
	for _, r := range g.Rankings {
		dto := rankingDTO{Metrica: r.Key, Nombre: r.Label, Posicion: r.Position, Equipos: r.Teams}
		if r.HasValue {
			v := round2(r.Value)
			dto.Valor = &v
		}
		out.Rankings = append(out.Rankings, dto)
	}
	return out
}

type verticalBarDTO struct {
	Equipo    string   `json:"equipo"`
	Valor     *float64 `json:"valor"`
	Destacado bool     `json:"destacado"`
	Promedio  bool     `json:"promedio"`
}

type verticalDTO struct {
	Metrica string           `json:"metrica"`
	Nombre  string           `json:"nombre"`
	Inversa bool             `json:"inversa"`
	Barras  []verticalBarDTO `json:"barras"`
}

func verticalsToDTO(items []league.Vertical) []verticalDTO {
	out := make([]verticalDTO, 0, len(items))
	for _, v := range items {
		dto := verticalDTO{Metrica: v.Metric, Nombre: v.Name, Inversa: v.Inverse, Barras: make([]verticalBarDTO, 0, len(v.Bars))}
		for _, b := range v.Bars {
			bar := verticalBarDTO{Equipo: b.Team, Destacado: b.Highlight, Promedio: b.Average}
			if b.HasValue {
				value := round2(b.Value)
				bar.Valor = &value
			}
			dto.Barras = append(dto.Barras, bar)
		}
		out = append(out, dto)
	}
	return out
}

type stylePointDTO struct {
	Equipo    string  `json:"equipo"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Destacado bool    `json:"destacado"`
}

type styleDTO struct {
	Equipos []stylePointDTO `json:"equipos"`
	Stats   struct {
		XMean float64 `json:"x_mean"`
		YMean float64 `json:"y_mean"`
	} `json:"stats"`
}

func styleToDTO(s league.Style) styleDTO {
	var out styleDTO
	out.Equipos = make([]stylePointDTO, 0, len(s.Points))
	for _, p := range s.Points {
		out.Equipos = append(out.Equipos, stylePointDTO{Equipo: p.Team, X: round2(p.X), Y: round2(p.Y), Destacado: p.Highlight})
	}
	out.Stats.XMean = round2(s.MeanX)
	out.Stats.YMean = round2(s.MeanY)
	return out
}

type leagueSummaryDTO struct {
	Equipo             string  `json:"equipo"`
	GolesFavor         float64 `json:"goles_favor"`
	GolesContra        float64 `json:"goles_contra"`
	XG                 float64 `json:"xg"`
	XGContra           float64 `json:"xg_contra"`
	Posesion           float64 `json:"posesion"`
	Tiros              float64 `json:"tiros"`
	TirosPuerta        float64 `json:"tiros_puerta"`
	PPDA               float64 `json:"ppda"`
	PosicionGolesFavor int     `json:"posicion_goles_favor"`
	TotalEquipos       int     `json:"total_equipos"`
}

func leagueSummaryToDTO(team string, s league.Summary) leagueSummaryDTO {
	return leagueSummaryDTO{
		Equipo:             team,
		GolesFavor:         round2(s.GoalsFor),
		GolesContra:        round2(s.GoalsAgainst),
		XG:                 round2(s.XG),
		XGContra:           round2(s.XGAgainst),
		Posesion:           round2(s.Possession),
		Tiros:              round2(s.Shots),
		TirosPuerta:        round2(s.ShotsOnTarget),
		PPDA:               round2(s.PPDA),
		PosicionGolesFavor: s.GoalsPosition,
		TotalEquipos:       s.Teams,
	}
}

type comparisonMetricDTO struct {
	Metrica string  `json:"metrica"`
	Nombre  string  `json:"nombre"`
	Equipo  float64 `json:"equipo"`
	Liga    float64 `json:"liga"`
}

type comparisonDTO struct {
	Resumen  leagueSummaryDTO      `json:"resumen"`
	Metricas []comparisonMetricDTO `json:"metricas"`
}

func comparisonToDTO(c usecase.LeagueComparison) comparisonDTO {
	out := comparisonDTO{
		Resumen:  leagueSummaryToDTO(c.Team, c.Summary),
		Metricas: make([]comparisonMetricDTO, 0, len(c.Metrics)),
	}
	for _, m := range c.Metrics {
		out.Metricas = append(out.Metricas, comparisonMetricDTO{Metrica: m.Metric, Nombre: m.Name, Equipo: round2(m.Team), Liga: round2(m.League)})
	}
	return out
}

type sourceCheckDTO struct {
	Nombre     string `json:"nombre"`
	Saludable  bool   `json:"saludable"`
	Error      string `json:"error,omitempty"`
	LatenciaMs int64  `json:"latencia_ms"`
}

type healthDTO struct {
	Status    string           `json:"status"`
	Timestamp string           `json:"timestamp"`
	Version   string           `json:"version"`
	Fuentes   []sourceCheckDTO `json:"fuentes"`
}

func healthToDTO(r usecase.HealthReport) healthDTO {
	out := healthDTO{
		Status:    r.Status,
		Timestamp: r.Timestamp.UTC().Format(time.RFC3339),
		Version:   r.Version,
		Fuentes:   make([]sourceCheckDTO, 0, len(r.Checks)),
	}
	for _, c := range r.Checks {
		out.Fuentes = append(out.Fuentes, sourceCheckDTO{Nombre: c.Name, Saludable: c.Healthy, Error: c.Error, LatenciaMs: c.LatencyMs})
	}
	return out
}

type jobRunDTO struct {
	Job        string `json:"job"`
	Omitido    bool   `json:"omitido"`
	DuracionMs int64  `json:"duracion_ms"`
}

type jobStatusDTO struct {
	Nombre           string `json:"nombre"`
	Programacion     string `json:"programacion"`
	EnEjecucion      bool   `json:"en_ejecucion"`
	Ejecuciones      int    `json:"ejecuciones"`
	UltimaEjecucion  string `json:"ultima_ejecucion,omitempty"`
	UltimoError      string `json:"ultimo_error,omitempty"`
	ProximaEjecucion string `json:"proxima_ejecucion,omitempty"`
}

type schedulerStatusDTO struct {
	Habilitado  bool           `json:"habilitado"`
	EnEjecucion bool           `json:"en_ejecucion"`
	Jobs        []jobStatusDTO `json:"jobs"`
}

func rfc3339(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func schedulerStatusToDTO(s usecase.SchedulerStatus) schedulerStatusDTO {
	out := schedulerStatusDTO{Habilitado: s.Enabled, EnEjecucion: s.Running, Jobs: make([]jobStatusDTO, 0, len(s.Jobs))}
	for _, j := range s.Jobs {
		out.Jobs = append(out.Jobs, jobStatusDTO{
			Nombre:           j.Name,
			Programacion:     j.Spec,
			EnEjecucion:      j.Running,
			Ejecuciones:      j.Runs,
			UltimaEjecucion:  rfc3339(j.LastRun),
			UltimoError:      j.LastError,
			ProximaEjecucion: rfc3339(j.NextRun),
		})
	}
	return out
}
