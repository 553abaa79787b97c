package handler

import "reflect"

// Every catalog entity carries a `ID uint` primary-key field; these two
// helpers reach it through reflection so ResourceHandler can stay generic
// without forcing an accessor interface onto the domain structs.

func entityID(entity any) uint {
	f := reflect.ValueOf(entity).Elem().FieldByName("ID")
	if !f.IsValid() || !f.CanUint() {
		return 0
	}
	return uint(f.Uint())
}

func setEntityID(entity any, id uint) {
	f := reflect.ValueOf(entity).Elem().FieldByName("ID")
	if f.IsValid() && f.CanSet() && f.CanUint() {
		f.SetUint(uint64(id))
	}
}
