package domain

import "strconv"

// TransactionKind is the money transaction code carried in the
// transactionType field of money server calls.
type TransactionKind int32

const (
	KindNone                  TransactionKind = 0
	KindObjectClaim           TransactionKind = 1000
	KindLandClaim             TransactionKind = 1001
	KindGroupCreate           TransactionKind = 1002
	KindGroupJoin             TransactionKind = 1004
	KindTeleportCharge        TransactionKind = 1100
	KindUploadCharge          TransactionKind = 1101
	KindLandAuction           TransactionKind = 1102
	KindClassifiedCharge      TransactionKind = 1103
	KindObjectTax             TransactionKind = 2000
	KindLandTax               TransactionKind = 2001
	KindParcelDirFee          TransactionKind = 2003
	KindGiveInventory         TransactionKind = 3000
	KindObjectSale            TransactionKind = 5000
	KindGift                  TransactionKind = 5001
	KindLandSale              TransactionKind = 5002
	KindReferBonus            TransactionKind = 5003
	KindInventorySale         TransactionKind = 5004
	KindRefundPurchase        TransactionKind = 5005
	KindLandPassSale          TransactionKind = 5006
	KindDwellBonus            TransactionKind = 5007
	KindPayObject             TransactionKind = 5008
	KindObjectPays            TransactionKind = 5009
	KindGroupLandDeed         TransactionKind = 6001
	KindGroupObjectDeed       TransactionKind = 6002
	KindGroupLiability        TransactionKind = 6003
	KindGroupDividend         TransactionKind = 6004
	KindGroupMembershipDues   TransactionKind = 6005
	KindObjectRelease         TransactionKind = 8000
	KindLandRelease           TransactionKind = 8001
	KindObjectDelete          TransactionKind = 8002
	KindObjectPublicDecay     TransactionKind = 8003
	KindObjectPublicDelete    TransactionKind = 8004
	KindSystemAdjustment      TransactionKind = 9000
	KindSystemGrant           TransactionKind = 9001
	KindSystemPenalty         TransactionKind = 9002
	KindEventFee              TransactionKind = 9003
	KindEventPrize            TransactionKind = 9004
	KindStipendBasic          TransactionKind = 10000
	KindStipendDeveloper      TransactionKind = 10001
	KindStipendAlways         TransactionKind = 10002
	KindStipendDaily          TransactionKind = 10003
	KindStipendRating         TransactionKind = 10004
	KindStipendDelta          TransactionKind = 10005
)

var kindNames = map[TransactionKind]string{
	KindNone:                "none",
	KindObjectClaim:         "object_claim",
	KindLandClaim:           "land_claim",
	KindGroupCreate:         "group_create",
	KindGroupJoin:           "group_join",
	KindTeleportCharge:      "teleport_charge",
	KindUploadCharge:        "upload_charge",
	KindLandAuction:         "land_auction",
	KindClassifiedCharge:    "classified_charge",
	KindObjectTax:           "object_tax",
	KindLandTax:             "land_tax",
	KindParcelDirFee:        "parcel_dir_fee",
	KindGiveInventory:       "give_inventory",
	KindObjectSale:          "object_sale",
	KindGift:                "gift",
	KindLandSale:            "land_sale",
	KindReferBonus:          "refer_bonus",
	KindInventorySale:       "inventory_sale",
	KindRefundPurchase:      "refund_purchase",
	KindLandPassSale:        "land_pass_sale",
	KindDwellBonus:          "dwell_bonus",
	KindPayObject:           "pay_object",
	KindObjectPays:          "object_pays",
	KindGroupLandDeed:       "group_land_deed",
	KindGroupObjectDeed:     "group_object_deed",
	KindGroupLiability:      "group_liability",
	KindGroupDividend:       "group_dividend",
	KindGroupMembershipDues: "group_membership_dues",
	KindObjectRelease:       "object_release",
	KindLandRelease:         "land_release",
	KindObjectDelete:        "object_delete",
	KindObjectPublicDecay:   "object_public_decay",
	KindObjectPublicDelete:  "object_public_delete",
	KindSystemAdjustment:    "system_adjustment",
	KindSystemGrant:         "system_grant",
	KindSystemPenalty:       "system_penalty",
	KindEventFee:            "event_fee",
	KindEventPrize:          "event_prize",
	KindStipendBasic:        "stipend_basic",
	KindStipendDeveloper:    "stipend_developer",
	KindStipendAlways:       "stipend_always",
	KindStipendDaily:        "stipend_daily",
	KindStipendRating:       "stipend_rating",
	KindStipendDelta:        "stipend_delta",
}

func (k TransactionKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return "kind_" + strconv.Itoa(int(k))
}

func (k TransactionKind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// TransactionCategory is the coarse classification reported alongside a
// transaction in logs and metrics. It is never written to a transactionType
// field.
type TransactionCategory int32

const (
	CategorySystemGenerated    TransactionCategory = 0
	CategoryRegionMoneyRequest TransactionCategory = 1
	CategoryGift               TransactionCategory = 2
	CategoryPurchase           TransactionCategory = 3
)

func (c TransactionCategory) String() string {
	switch c {
	case CategoryRegionMoneyRequest:
		return "region_money_request"
	case CategoryGift:
		return "gift"
	case CategoryPurchase:
		return "purchase"
	default:
		return "system_generated"
	}
}

func (k TransactionKind) Category() TransactionCategory {
	switch k {
	case KindGift, KindGiveInventory:
		return CategoryGift
	case KindObjectSale, KindLandSale, KindInventorySale, KindLandPassSale, KindPayObject, KindRefundPurchase:
		return CategoryPurchase
	case KindObjectPays:
		return CategoryRegionMoneyRequest
	default:
		return CategorySystemGenerated
	}
}
