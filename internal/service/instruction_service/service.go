package instruction_service

type service struct{}

func NewService() *service {
	return &service{}
}
