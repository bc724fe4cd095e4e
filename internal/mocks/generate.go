package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name MatchRepository --dir ../domain/telemetry --output domain/telemetry --outpkg telemetrymock --filename match_repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name TrainingRepository --dir ../domain/telemetry --output domain/telemetry --outpkg telemetrymock --filename training_repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/outcome --output domain/outcome --outpkg outcomemock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/league --output domain/league --outpkg leaguemock --filename repository_mock.go
