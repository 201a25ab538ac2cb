package domain

type SceneObject struct {
	ID           string
	LocalID      uint32
	Name         string
	OwnerID      AccountID
	RegionHandle uint64
	SalePrice    int32
	ForSale      bool
}

type Dialog int

const (
	DialogMessageFromAgent Dialog = 0
	DialogMessageBox       Dialog = 1
)

type InstantMessage struct {
	FromName string
	Dialog   Dialog
	Text     string
}

type ObjectPaid struct {
	ObjectID string
	Payer    AccountID
	Amount   int32
}
