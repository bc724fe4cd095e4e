package httpapi

type scatterQuery struct {
	Partido string `validate:"omitempty,max=200"`
}

type microcycleQuery struct {
	Jornada       string `validate:"required,max=16"`
	TipoDistancia string `validate:"omitempty,max=32"`
}

type refreshRequest struct {
	Job string `json:"job" validate:"omitempty,oneof=refresh cache_cleanup health_check"`
}
