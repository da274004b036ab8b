package insts

// opNames maps opcodes to their names. Keep in sync with the Op
// declaration order in op.go.
var opNames = [NumOps]string{
	OpUnknown: "Unknown",
	OpError: "Error",
	OpUDF: "UDF",
	OpADR: "ADR",
	OpADRP: "ADRP",
	OpADDImm: "ADDImm",
	OpCMNImm: "CMNImm",
	OpMOVSP: "MOVSP",
	OpSUBImm: "SUBImm",
	OpCMPImm: "CMPImm",
	OpANDImm: "ANDImm",
	OpORRImm: "ORRImm",
	OpEORImm: "EORImm",
	OpTSTImm: "TSTImm",
	OpMOVK: "MOVK",
	OpMOVImm: "MOVImm",
	OpSBFM: "SBFM",
	OpASRImm: "ASRImm",
	OpSBFIZ: "SBFIZ",
	OpSBFX: "SBFX",
	OpBFM: "BFM",
	OpBFC: "BFC",
	OpBFI: "BFI",
	OpBFXIL: "BFXIL",
	OpUBFM: "UBFM",
	OpLSLImm: "LSLImm",
	OpLSRImm: "LSRImm",
	OpUBFIZ: "UBFIZ",
	OpUBFX: "UBFX",
	OpEXTEND: "EXTEND",
	OpEXTR: "EXTR",
	OpRORImm: "RORImm",
	OpBCond: "BCond",
	OpSVC: "SVC",
	OpHVC: "HVC",
	OpSMC: "SMC",
	OpBRK: "BRK",
	OpHLT: "HLT",
	OpDCPS1: "DCPS1",
	OpDCPS2: "DCPS2",
	OpDCPS3: "DCPS3",
	OpHINT: "HINT",
	OpCLREX: "CLREX",
	OpDMB: "DMB",
	OpISB: "ISB",
	OpSB: "SB",
	OpDSB: "DSB",
	OpSSBB: "SSBB",
	OpPSSBB: "PSSBB",
	OpMSRImm: "MSRImm",
	OpCFINV: "CFINV",
	OpXAFlag: "XAFlag",
	OpAXFlag: "AXFlag",
	OpSYS: "SYS",
	OpSYSL: "SYSL",
	OpMSRReg: "MSRReg",
	OpMRS: "MRS",
	OpBR: "BR",
	OpBLR: "BLR",
	OpRET: "RET",
	OpB: "B",
	OpBL: "BL",
	OpCBZ: "CBZ",
	OpCBNZ: "CBNZ",
	OpTBZ: "TBZ",
	OpTBNZ: "TBNZ",
	OpUDIV: "UDIV",
	OpSDIV: "SDIV",
	OpLSLV: "LSLV",
	OpLSRV: "LSRV",
	OpASRV: "ASRV",
	OpRORV: "RORV",
	OpCRC32B: "CRC32B",
	OpCRC32H: "CRC32H",
	OpCRC32W: "CRC32W",
	OpCRC32X: "CRC32X",
	OpCRC32CB: "CRC32CB",
	OpCRC32CH: "CRC32CH",
	OpCRC32CW: "CRC32CW",
	OpCRC32CX: "CRC32CX",
	OpSUBP: "SUBP",
	OpRBIT: "RBIT",
	OpREV16: "REV16",
	OpREV: "REV",
	OpREV32: "REV32",
	OpCLZ: "CLZ",
	OpCLS: "CLS",
	OpANDShifted: "ANDShifted",
	OpTSTShifted: "TSTShifted",
	OpBIC: "BIC",
	OpORRShifted: "ORRShifted",
	OpMOVReg: "MOVReg",
	OpORN: "ORN",
	OpMVN: "MVN",
	OpEORShifted: "EORShifted",
	OpEON: "EON",
	OpADDShifted: "ADDShifted",
	OpCMNShifted: "CMNShifted",
	OpSUBShifted: "SUBShifted",
	OpNEG: "NEG",
	OpCMPShifted: "CMPShifted",
	OpADDExt: "ADDExt",
	OpCMNExt: "CMNExt",
	OpSUBExt: "SUBExt",
	OpCMPExt: "CMPExt",
	OpADC: "ADC",
	OpSBC: "SBC",
	OpNGC: "NGC",
	OpRMIF: "RMIF",
	OpSETF8: "SETF8",
	OpSETF16: "SETF16",
	OpCCMNReg: "CCMNReg",
	OpCCMPReg: "CCMPReg",
	OpCCMNImm: "CCMNImm",
	OpCCMPImm: "CCMPImm",
	OpCSEL: "CSEL",
	OpCSINC: "CSINC",
	OpCINC: "CINC",
	OpCSET: "CSET",
	OpCSINV: "CSINV",
	OpCINV: "CINV",
	OpCSETM: "CSETM",
	OpCSNEG: "CSNEG",
	OpCNEG: "CNEG",
	OpMADD: "MADD",
	OpMUL: "MUL",
	OpMSUB: "MSUB",
	OpMNEG: "MNEG",
	OpSMADDL: "SMADDL",
	OpSMULL: "SMULL",
	OpSMSUBL: "SMSUBL",
	OpSMNEGL: "SMNEGL",
	OpSMULH: "SMULH",
	OpUMADDL: "UMADDL",
	OpUMULL: "UMULL",
	OpUMSUBL: "UMSUBL",
	OpUMNEGL: "UMNEGL",
	OpUMULH: "UMULH",
	OpLD1Mult: "LD1Mult",
	OpST1Mult: "ST1Mult",
	OpLD2Mult: "LD2Mult",
	OpST2Mult: "ST2Mult",
	OpLD3Mult: "LD3Mult",
	OpST3Mult: "ST3Mult",
	OpLD4Mult: "LD4Mult",
	OpST4Mult: "ST4Mult",
	OpLD1Single: "LD1Single",
	OpST1Single: "ST1Single",
	OpLD2Single: "LD2Single",
	OpST2Single: "ST2Single",
	OpLD3Single: "LD3Single",
	OpST3Single: "ST3Single",
	OpLD4Single: "LD4Single",
	OpST4Single: "ST4Single",
	OpLD1R: "LD1R",
	OpLD2R: "LD2R",
	OpLD3R: "LD3R",
	OpLD4R: "LD4R",
	OpLDXR: "LDXR",
	OpSTXR: "STXR",
	OpLDXP: "LDXP",
	OpSTXP: "STXP",
	OpLDAPR: "LDAPR",
	OpLDNP: "LDNP",
	OpSTNP: "STNP",
	OpLDNPFP: "LDNPFP",
	OpSTNPFP: "STNPFP",
	OpLDP: "LDP",
	OpSTP: "STP",
	OpLDPFP: "LDPFP",
	OpSTPFP: "STPFP",
	OpLDR: "LDR",
	OpSTR: "STR",
	OpLDRFP: "LDRFP",
	OpSTRFP: "STRFP",
	OpPRFM: "PRFM",
	OpLDADD: "LDADD",
	OpLDCLR: "LDCLR",
	OpLDEOR: "LDEOR",
	OpLDSET: "LDSET",
	OpLDSMAX: "LDSMAX",
	OpLDSMIN: "LDSMIN",
	OpLDUMAX: "LDUMAX",
	OpLDUMIN: "LDUMIN",
	OpSWP: "SWP",
	OpCAS: "CAS",
	OpCASP: "CASP",
	OpFCVTGPR: "FCVTGPR",
	OpFCVTVec: "FCVTVec",
	OpCVTF: "CVTF",
	OpCVTFVec: "CVTFVec",
	OpFJCVTZS: "FJCVTZS",
	OpFRINT: "FRINT",
	OpFRINTVec: "FRINTVec",
	OpFRINTX: "FRINTX",
	OpFRINTXVec: "FRINTXVec",
	OpFCVTH: "FCVTH",
	OpFCVTS: "FCVTS",
	OpFCVTD: "FCVTD",
	OpFCVTL: "FCVTL",
	OpFCVTN: "FCVTN",
	OpFCVTXN: "FCVTXN",
	OpFABS: "FABS",
	OpFNEG: "FNEG",
	OpFSQRT: "FSQRT",
	OpFMUL: "FMUL",
	OpFMULX: "FMULX",
	OpFDIV: "FDIV",
	OpFADD: "FADD",
	OpFSUB: "FSUB",
	OpFMAX: "FMAX",
	OpFMAXNM: "FMAXNM",
	OpFMIN: "FMIN",
	OpFMINNM: "FMINNM",
	OpFRECPE: "FRECPE",
	OpFRECPS: "FRECPS",
	OpFRECPX: "FRECPX",
	OpFRSQRTE: "FRSQRTE",
	OpFRSQRTS: "FRSQRTS",
	OpFNMUL: "FNMUL",
	OpFMADD: "FMADD",
	OpFMSUB: "FMSUB",
	OpFNMADD: "FNMADD",
	OpFNMSUB: "FNMSUB",
	OpFCMPReg: "FCMPReg",
	OpFCMPZero: "FCMPZero",
	OpFCMPEReg: "FCMPEReg",
	OpFCMPEZero: "FCMPEZero",
	OpFCCMP: "FCCMP",
	OpFCCMPE: "FCCMPE",
	OpFCSEL: "FCSEL",
	OpFMOVVec2GPR: "FMOVVec2GPR",
	OpFMOVGPR2Vec: "FMOVGPR2Vec",
	OpFMOVTop2GPR: "FMOVTop2GPR",
	OpFMOVGPR2Top: "FMOVGPR2Top",
	OpFMOVReg: "FMOVReg",
	OpFMOVImm: "FMOVImm",
	OpFMOVVec: "FMOVVec",
	OpFCMEQReg: "FCMEQReg",
	OpFCMEQZero: "FCMEQZero",
	OpFCMGEReg: "FCMGEReg",
	OpFCMGEZero: "FCMGEZero",
	OpFCMGTReg: "FCMGTReg",
	OpFCMGTZero: "FCMGTZero",
	OpFCMLEZero: "FCMLEZero",
	OpFCMLTZero: "FCMLTZero",
	OpFACGE: "FACGE",
	OpFACGT: "FACGT",
	OpFABSVec: "FABSVec",
	OpFABDVec: "FABDVec",
	OpFNEGVec: "FNEGVec",
	OpFSQRTVec: "FSQRTVec",
	OpFMULElem: "FMULElem",
	OpFMULVec: "FMULVec",
	OpFMULXElem: "FMULXElem",
	OpFMULXVec: "FMULXVec",
	OpFDIVVec: "FDIVVec",
	OpFADDVec: "FADDVec",
	OpFCADD: "FCADD",
	OpFSUBVec: "FSUBVec",
	OpFMAXVec: "FMAXVec",
	OpFMAXNMVec: "FMAXNMVec",
	OpFMINVec: "FMINVec",
	OpFMINNMVec: "FMINNMVec",
	OpFRECPEVec: "FRECPEVec",
	OpFRECPSVec: "FRECPSVec",
	OpFRSQRTEVec: "FRSQRTEVec",
	OpFRSQRTSVec: "FRSQRTSVec",
	OpFMLAElem: "FMLAElem",
	OpFMLAVec: "FMLAVec",
	OpFMLALElem: "FMLALElem",
	OpFMLALVec: "FMLALVec",
	OpFMLAL2Elem: "FMLAL2Elem",
	OpFMLAL2Vec: "FMLAL2Vec",
	OpFCMLAElem: "FCMLAElem",
	OpFCMLAVec: "FCMLAVec",
	OpFMLSElem: "FMLSElem",
	OpFMLSVec: "FMLSVec",
	OpFMLSLElem: "FMLSLElem",
	OpFMLSLVec: "FMLSLVec",
	OpFMLSL2Elem: "FMLSL2Elem",
	OpFMLSL2Vec: "FMLSL2Vec",
	OpFADDP: "FADDP",
	OpFADDPVec: "FADDPVec",
	OpFMAXP: "FMAXP",
	OpFMAXPVec: "FMAXPVec",
	OpFMAXV: "FMAXV",
	OpFMAXNMP: "FMAXNMP",
	OpFMAXNMPVec: "FMAXNMPVec",
	OpFMAXNMV: "FMAXNMV",
	OpFMINP: "FMINP",
	OpFMINPVec: "FMINPVec",
	OpFMINV: "FMINV",
	OpFMINNMP: "FMINNMP",
	OpFMINNMPVec: "FMINNMPVec",
	OpFMINNMV: "FMINNMV",
	OpANDVec: "ANDVec",
	OpBCAX: "BCAX",
	OpBICVecImm: "BICVecImm",
	OpBICVecReg: "BICVecReg",
	OpBIF: "BIF",
	OpBIT: "BIT",
	OpBSL: "BSL",
	OpCLSVec: "CLSVec",
	OpCLZVec: "CLZVec",
	OpCNT: "CNT",
	OpEORVec: "EORVec",
	OpEOR3: "EOR3",
	OpNOTVec: "NOTVec",
	OpORNVec: "ORNVec",
	OpORRVecImm: "ORRVecImm",
	OpORRVecReg: "ORRVecReg",
	OpMOVVec: "MOVVec",
	OpRAX1: "RAX1",
	OpRBITVec: "RBITVec",
	OpREV16Vec: "REV16Vec",
	OpREV32Vec: "REV32Vec",
	OpREV64Vec: "REV64Vec",
	OpSHLImm: "SHLImm",
	OpSHLReg: "SHLReg",
	OpSHLL: "SHLL",
	OpSHR: "SHR",
	OpSHRN: "SHRN",
	OpSRA: "SRA",
	OpSLI: "SLI",
	OpSRI: "SRI",
	OpXAR: "XAR",
	OpDUPElem: "DUPElem",
	OpDUPGPR: "DUPGPR",
	OpEXT: "EXT",
	OpINSElem: "INSElem",
	OpINSGPR: "INSGPR",
	OpMOVI: "MOVI",
	OpSMOV: "SMOV",
	OpUMOV: "UMOV",
	OpTBL: "TBL",
	OpTBX: "TBX",
	OpTRN1: "TRN1",
	OpTRN2: "TRN2",
	OpUZP1: "UZP1",
	OpUZP2: "UZP2",
	OpXTN: "XTN",
	OpZIP1: "ZIP1",
	OpZIP2: "ZIP2",
	OpCMEQReg: "CMEQReg",
	OpCMEQZero: "CMEQZero",
	OpCMGEReg: "CMGEReg",
	OpCMGEZero: "CMGEZero",
	OpCMGTReg: "CMGTReg",
	OpCMGTZero: "CMGTZero",
	OpCMHIReg: "CMHIReg",
	OpCMHSReg: "CMHSReg",
	OpCMLEZero: "CMLEZero",
	OpCMLTZero: "CMLTZero",
	OpCMTST: "CMTST",
	OpABSVec: "ABSVec",
	OpABD: "ABD",
	OpABDL: "ABDL",
	OpABA: "ABA",
	OpABAL: "ABAL",
	OpNEGVec: "NEGVec",
	OpMULElem: "MULElem",
	OpMULVec: "MULVec",
	OpMULLElem: "MULLElem",
	OpMULLVec: "MULLVec",
	OpADDVec: "ADDVec",
	OpADDHN: "ADDHN",
	OpADDL: "ADDL",
	OpADDW: "ADDW",
	OpHADD: "HADD",
	OpSUBVec: "SUBVec",
	OpSUBHN: "SUBHN",
	OpSUBL: "SUBL",
	OpSUBW: "SUBW",
	OpHSUB: "HSUB",
	OpMAXVec: "MAXVec",
	OpMINVec: "MINVec",
	OpDOTElem: "DOTElem",
	OpDOTVec: "DOTVec",
	OpURECPE: "URECPE",
	OpURSQRTE: "URSQRTE",
	OpMLAElem: "MLAElem",
	OpMLAVec: "MLAVec",
	OpMLSElem: "MLSElem",
	OpMLSVec: "MLSVec",
	OpMLALElem: "MLALElem",
	OpMLALVec: "MLALVec",
	OpMLSLElem: "MLSLElem",
	OpMLSLVec: "MLSLVec",
	OpADDP: "ADDP",
	OpADDPVec: "ADDPVec",
	OpADDV: "ADDV",
	OpADALP: "ADALP",
	OpADDLP: "ADDLP",
	OpADDLV: "ADDLV",
	OpMAXP: "MAXP",
	OpMAXV: "MAXV",
	OpMINP: "MINP",
	OpMINV: "MINV",
	OpQADD: "QADD",
	OpQABS: "QABS",
	OpSUQADD: "SUQADD",
	OpUSQADD: "USQADD",
	OpQSHLImm: "QSHLImm",
	OpQSHLReg: "QSHLReg",
	OpQSHRN: "QSHRN",
	OpQSUB: "QSUB",
	OpQXTN: "QXTN",
	OpSQABS: "SQABS",
	OpSQNEG: "SQNEG",
	OpSQDMLALElem: "SQDMLALElem",
	OpSQDMLALVec: "SQDMLALVec",
	OpSQDMLSLElem: "SQDMLSLElem",
	OpSQDMLSLVec: "SQDMLSLVec",
	OpSQDMULHElem: "SQDMULHElem",
	OpSQDMULHVec: "SQDMULHVec",
	OpSQDMULLElem: "SQDMULLElem",
	OpSQDMULLVec: "SQDMULLVec",
	OpSQRDMLAHElem: "SQRDMLAHElem",
	OpSQRDMLAHVec: "SQRDMLAHVec",
	OpSQRDMLSHElem: "SQRDMLSHElem",
	OpSQRDMLSHVec: "SQRDMLSHVec",
	OpSQSHLU: "SQSHLU",
	OpSQSHRUN: "SQSHRUN",
	OpSQXTUN: "SQXTUN",
	OpPMUL: "PMUL",
	OpPMULL: "PMULL",
}
