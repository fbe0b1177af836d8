package edcb

// Wire-level constants from CtrlCmd(Def).cs, confirmed against
// original_source/edcb.py's __CMD_* constants.
const (
	cmdSuccess int32 = 1
	cmdVer     uint16 = 5
)

// Opcodes, grouped the way §4.3's operation catalogue lists them.
const (
	opViewSetBonDriver int32 = 201
	opViewGetBonDriver int32 = 202
	opViewSetCh        int32 = 205
	opViewAppClose     int32 = 208

	opRelayViewStream int32 = 301

	opDelReserve      int32 = 1014
	opEnumTunerReserve int32 = 1016
	opDelRecInfo      int32 = 1018
	opChgPathRecInfo  int32 = 1019
	opEnumService     int32 = 1021
	opSearchPg        int32 = 1025
	opEnumPgInfoEx    int32 = 1029
	opEnumPgArc       int32 = 1030
	opDelAutoAdd      int32 = 1033
	opDelManuAdd      int32 = 1043
	opFileCopy        int32 = 1060
	opEnumPlugIn      int32 = 1061
	opNwTVIDSetCh     int32 = 1073
	opNwTVIDClose     int32 = 1074
	opGetNetworkPath  int32 = 1299

	opEnumReserve2        int32 = 2011
	opAddReserve2         int32 = 2013
	opChgReserve2         int32 = 2015
	opChgProtectRecInfo2  int32 = 2019
	opEnumRecInfoBasic2   int32 = 2020
	opGetRecInfo2         int32 = 2024
	opFileCopy2           int32 = 2060
	opEnumAutoAdd2        int32 = 2131
	opAddAutoAdd2         int32 = 2132
	opChgAutoAdd2         int32 = 2134
	opEnumManuAdd2        int32 = 2141
	opAddManuAdd2         int32 = 2142
	opChgManuAdd2         int32 = 2144
	opGetStatusNotify2    int32 = 2200
)
