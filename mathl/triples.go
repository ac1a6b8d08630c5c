package mathl

// Reduction tables and coefficient sets of the long tier. Each value is
// stored as an unevaluated sum of three float64 values (about 159 bits),
// and rounded once to the long format when the package is initialized.

// sin(n degrees), n = 0 to 90.
var sindTriples = [...]triple{
	{0, 0, 0},
	{0x1.1df0b2b89dd1ep-6, 0x1.5834d68148788p-60, -0x1.a4311c0b03714p-114},
	{0x1.1de58c9f7dc27p-5, 0x1.6a29acafffa4cp-59, 0x1.a0e6ea217396dp-119},
	{0x1.acbc748efc90ep-5, -0x1.1aac9507cfe2ep-59, 0x1.9b56e2b028220p-114},
	{0x1.1db8f6d6a5128p-4, -0x1.eab8ddc6fd5e1p-60, 0x1.4e68c32ca8b7bp-114},
	{0x1.64fd6b8c28103p-4, -0x1.c8b5c051cd2dcp-58, -0x1.8d2f69ca15d16p-112},
	{0x1.ac2609b3c576cp-4, 0x1.46278894ee35fp-61, 0x1.5c6dea2a27b07p-117},
	{0x1.f32d44c4f62d3p-4, 0x1.71db46a5c3e9ep-58, -0x1.2a1b8120e1d8fp-115},
	{0x1.1d06c968d9e19p-3, 0x1.ce41cc5da7ce2p-58, -0x1.7a6b68071e64cp-112},
	{0x1.4060b67a85375p-3, 0x1.dcc510fdcc9c4p-65, 0x1.ba7d7dbbb2b7ap-119},
	{0x1.63a1a7e0b738ap-3, -0x1.744603e3937c7p-57, 0x1.a32bac869b0a3p-112},
	{0x1.86c6ddd76624fp-3, 0x1.28f0bc3a8cf76p-57, -0x1.c9636f194b601p-111},
	{0x1.a9cd9ac4258f6p-3, -0x1.93e458481ed0ap-58, -0x1.ca43c3acd3b77p-116},
	{0x1.ccb3236cdc675p-3, -0x1.8ca1c7b0f9233p-58, -0x1.09ccc3f43767ap-112},
	{0x1.ef74bf2e4b91dp-3, -0x1.143d8df6f6888p-57, -0x1.1be98d71e13b9p-111},
	{0x1.0907dc1930690p-2, 0x1.a5ec4dc53f528p-56, 0x1.54ba97b258f75p-110},
	{0x1.1a40add328e29p-2, 0x1.9bc8cbb922504p-56, -0x1.db1f48350cc47p-110},
	{0x1.2b637cf83d5c7p-2, 0x1.06ee1a1c0b777p-56, 0x1.f3e4019e11556p-110},
	{0x1.3c6ef372fe950p-2, -0x1.f506319fcfd19p-56, 0x1.b906821044ed8p-110},
	{0x1.4d61bd000cddbp-2, 0x1.c12551f7dc083p-56, 0x1.4dece4ff65daep-111},
	{0x1.5e3a8748a0bf5p-2, 0x1.7371a64afcbd6p-56, 0x1.9f152fec61f52p-110},
	{0x1.6ef801fced33cp-2, 0x1.7a7c2ec0e8901p-58, 0x1.2a09d5bf80addp-113},
	{0x1.7f98deee59681p-2, 0x1.7ce7221fdb4d2p-56, -0x1.3aebf80f97b62p-113},
	{0x1.901bd2298ffabp-2, -0x1.2b17ccd9e8858p-56, 0x1.be253a48edba2p-110},
	{0x1.a07f921061ad1p-2, -0x1.300958f09a077p-61, -0x1.676c6c535635ep-115},
	{0x1.b0c2d77379853p-2, -0x1.784bf8168bfb9p-58, 0x1.9de5aed4bc035p-113},
	{0x1.c0e45dabe05c8p-2, 0x1.f64aed2c5990ep-57, -0x1.2aa986596b454p-114},
	{0x1.d0e2e2b44de01p-2, -0x1.dcad11f226a79p-57, 0x1.ad6b24584317ap-112},
	{0x1.e0bd274245078p-2, 0x1.d97f1131c42afp-56, 0x1.4f5b362003235p-113},
	{0x1.f071eedefa0ecp-2, 0x1.e08e08d88a29ap-56, 0x1.78ee5b06a11b5p-110},
	{0x1p-1, 0, 0},
	{0x1.07b3120fddf13p-1, 0x1.f7249b9bb949dp-55, 0x1.5730e4a851962p-109},
	{0x1.0f5193eacdd2ap-1, 0x1.eb124a84fa5e7p-55, 0x1.436c73718ece5p-109},
	{0x1.16daed770771dp-1, -0x1.2cef38bdd979fp-59, 0x1.064ec6e1451f5p-114},
	{0x1.1e4e88411fd12p-1, 0x1.4f3aba7a54adcp-55, -0x1.609dde28e5013p-114},
	{0x1.25abcf87c4978p-1, 0x1.b805821236b88p-55, -0x1.bc831ad5225abp-109},
	{0x1.2cf2304755a5ep-1, -0x1.24bd9a522ca0dp-57, 0x1.b0b1fab1b3853p-112},
	{0x1.342119455beb6p-1, 0x1.cf31de7818f57p-57, -0x1.a79286d960eebp-111},
	{0x1.3b37fb1bdc939p-1, -0x1.bbf07ed3a7b9ep-57, -0x1.a7899bca289fcp-111},
	{0x1.4236484487abep-1, -0x1.c69dccc7e3747p-55, 0x1.4c50ac294719ap-113},
	{0x1.491b7523c161dp-1, -0x1.518a0c6797c16p-55, 0x1.08892c0060b51p-109},
	{0x1.4fe6f81384fd4p-1, 0x1.4a12a7b6f1ebap-57, -0x1.ddad9adb0f410p-111},
	{0x1.5698496e20bd8p-1, -0x1.b5feef3e4cbc6p-56, 0x1.8e8f129d239b4p-111},
	{0x1.5d2ee398c9c2bp-1, 0x1.b9188095a7413p-56, 0x1.90e66843c321ep-111},
	{0x1.63aa430e07310p-1, 0x1.2c3d582a33eb5p-55, 0x1.cc8ae28eb05f4p-109},
	{0x1.6a09e667f3bcdp-1, -0x1.bdd3413b26456p-55, 0x1.57d3e3adec175p-109},
	{0x1.704d4e6a54d39p-1, -0x1.e43e27f2d691ap-55, -0x1.a22c8d58d2896p-110},
	{0x1.7673fe0c86982p-1, 0x1.b09ccd1e10433p-56, -0x1.15d3c463003f3p-112},
	{0x1.7c7d7a833bec2p-1, -0x1.4fd665c1bfc2cp-57, -0x1.e391ef8a09a9ep-112},
	{0x1.82694b4a11c37p-1, -0x1.290ea09aff038p-56, -0x1.62b66e876caecp-110},
	{0x1.8836fa2cf5039p-1, 0x1.913ad5051e83cp-56, -0x1.da60dbbbd3302p-110},
	{0x1.8de613515a328p-1, -0x1.926077627a614p-56, 0x1.fc156563413d7p-110},
	{0x1.9376253f463d1p-1, 0x1.eda014796a4e9p-55, 0x1.9cf9c7fd09448p-112},
	{0x1.98e6c0ea27a14p-1, 0x1.3aa23c4fc810ap-56, -0x1.acc7ad82c9f34p-120},
	{0x1.9e3779b97f4a8p-1, -0x1.f506319fcfd19p-56, 0x1.b906821044ed8p-110},
	{0x1.a367e59158747p-1, -0x1.476f2057c7a75p-57, 0x1.852b94c0d279bp-111},
	{0x1.a8779cda8eea5p-1, -0x1.8e3108597e53dp-55, -0x1.f2843ca0cf1f7p-110},
	{0x1.ad663a8ae2fdcp-1, -0x1.7d089f38daab4p-56, -0x1.0cb3bae9a6312p-111},
	{0x1.b2335c2cda945p-1, 0x1.f650e3542f522p-57, 0x1.f8b43f71952e5p-111},
	{0x1.b6dea1e76eadep-1, -0x1.a99ccc062eac6p-55, 0x1.cc8f7c01cfad0p-109},
	{0x1.bb67ae8584caap-1, 0x1.cec95d0b5c1e3p-55, -0x1.f11db689f2ccfp-111},
	{0x1.bfce277d339c7p-1, -0x1.dedb255224689p-55, -0x1.40920cde886e8p-109},
	{0x1.c411b4f6d2708p-1, -0x1.abc92c5ff4313p-55, 0x1.7e954996eda88p-109},
	{0x1.c83201d3d2c6dp-1, -0x1.502f18ecea53dp-55, 0x1.26b7216c5ed32p-111},
	{0x1.cc2ebbb5638cap-1, -0x1.9d86cf47b63ecp-55, -0x1.0eced837024a0p-109},
	{0x1.d0079302dd767p-1, 0x1.ea1affbfa8e0fp-56, -0x1.a0b610121c378p-110},
	{0x1.d3bc3aeff7f95p-1, 0x1.0a9585526bd01p-55, 0x1.9bbf5de4993cep-110},
	{0x1.d74c6982c666fp-1, -0x1.b4737903637a7p-55, -0x1.04de06fa33e0ap-109},
	{0x1.dab7d7997cb58p-1, -0x1.b12f63f5c16f5p-56, -0x1.f75c680285481p-110},
	{0x1.ddfe40effb805p-1, 0x1.ba37ac9812146p-58, -0x1.ec356f7783a4cp-112},
	{0x1.e11f642522d1cp-1, -0x1.94741676559d4p-55, 0x1.1cd41ecba724dp-111},
	{0x1.e41b02bfeb4cbp-1, -0x1.4a4b213edc43fp-55, 0x1.b897d9ebeda13p-110},
	{0x1.e6f0e134454ffp-1, 0x1.798ddb868c354p-55, -0x1.4006c5789adcbp-109},
	{0x1.e9a0c6e7bdb1fp-1, 0x1.a6ba2d98e8fd3p-55, 0x1.e05f77a8c8593p-112},
	{0x1.ec2a7e35e7b80p-1, -0x1.294d8b709433cp-55, -0x1.1810aa08e1939p-109},
	{0x1.ee8dd4748bf15p-1, -0x1.d5ba34b10d383p-56, 0x1.1897c38c497c0p-116},
	{0x1.f0ca99f79ba25p-1, -0x1.77907e4ebb232p-61, -0x1.04c18bd602fdcp-117},
	{0x1.f2e0a214e870fp-1, -0x1.3ff9654e4d475p-56, -0x1.43a8ca400d19bp-110},
	{0x1.f4cfc327a0080p-1, -0x1.d582906f0e46fp-55, -0x1.7fb1f4a12944ep-110},
	{0x1.f697d6938b6c2p-1, -0x1.99d15a2cab020p-56, -0x1.1f816bb752cc4p-112},
	{0x1.f838b8c811c17p-1, 0x1.682ec6bde69d5p-55, 0x1.d813c3f691afap-109},
	{0x1.f9b24942fe45cp-1, -0x1.974e46efc6627p-55, 0x1.4ecb503d18f8fp-110},
	{0x1.fb046a930947ap-1, -0x1.b0888ea4fc47fp-55, 0x1.826ed98c7c5cbp-109},
	{0x1.fc2f025a23e8bp-1, 0x1.de40913111faap-55, -0x1.15a40923c2bd3p-110},
	{0x1.fd31f94f867c6p-1, 0x1.b2107407b26fbp-55, -0x1.fc3b92d8b7419p-112},
	{0x1.fe0d3b41815a2p-1, -0x1.dc0ff3c26b1bep-57, -0x1.1525ff3eb4d3dp-112},
	{0x1.fec0b7170fff6p-1, 0x1.cccd75c56b11fp-55, 0x1.eba5c4dbed7ddp-109},
	{0x1.ff4c5ed12e61dp-1, 0x1.7605c7f798be8p-55, -0x1.04404a7bdae82p-110},
	{0x1.ffb0278bf0567p-1, -0x1.282e2ce2238c1p-55, -0x1.4f3bb258e1ff0p-110},
	{0x1.ffec097f5af8ap-1, -0x1.18945ff801a15p-55, -0x1.ec57edd45ddc4p-109},
	{0x1p+0, 0, 0},
}

// exp(n/128), n = -45 to 45, stored at index n+45.
var expTriples = [...]triple{
	{0x1.683cab7c5a6efp-1, 0x1.821d19f10764bp-56, 0x1.f7137b6fe9f65p-113},
	{0x1.6b0ff72deb89dp-1, -0x1.dabf5975c0c02p-57, 0x1.d8b214f02f767p-113},
	{0x1.6de8ef213d71ep-1, 0x1.8b72d176bde7bp-57, -0x1.5f049cfd2caf2p-112},
	{0x1.70c79eba33c07p-1, -0x1.58b71227465a1p-55, -0x1.6a5087695bb9cp-109},
	{0x1.73ac117390acdp-1, 0x1.f8c1c6cf73277p-55, 0x1.d6befc48cf4c8p-109},
	{0x1.769652df22f7ep-1, 0x1.3445f7544e0efp-57, 0x1.c2a51a84c7df9p-111},
	{0x1.79866ea5f432dp-1, 0x1.1339ca100a0a9p-56, 0x1.12d5fe99555e2p-112},
	{0x1.7c7c70887763cp-1, -0x1.09aa682553231p-60, 0x1.b0158e6540b09p-116},
	{0x1.7f78645eb8076p-1, 0x1.3572107f84e07p-55, 0x1.270b6426ba9aap-109},
	{0x1.827a561889716p-1, -0x1.6b2eab63020c1p-57, 0x1.29842c253ffa5p-111},
	{0x1.858251bdb68b9p-1, -0x1.44395f562c66ep-55, -0x1.bfb1c463ab003p-111},
	{0x1.8890636e31f54p-1, 0x1.d9c29d8d982edp-56, 0x1.d72665944f9adp-110},
	{0x1.8ba4976246834p-1, -0x1.aad7810320114p-55, -0x1.fff2814c6697fp-109},
	{0x1.8ebef9eac820bp-1, -0x1.797d4686c5393p-57, 0x1.e772c0e212b58p-113},
	{0x1.91df97714512ep-1, -0x1.ea1cb9d163339p-55, -0x1.1ea2354bc441ap-110},
	{0x1.95067c78379f2p-1, 0x1.f483a3e8cd60fp-55, -0x1.984659bb32501p-109},
	{0x1.9833b59b38154p-1, 0x1.dffd920f493dbp-56, -0x1.e8ab40effd5afp-110},
	{0x1.9b674f8f2f3d8p-1, -0x1.51bfdbb129094p-55, -0x1.94512f6938345p-110},
	{0x1.9ea15722892c7p-1, 0x1.cd3e5225e2206p-55, -0x1.e1d8658683732p-109},
	{0x1.a1e1d93d687d0p-1, 0x1.e3a6bdaece8f9p-58, -0x1.8bbadd3d026c6p-112},
	{0x1.a528e2e1d9f0ap-1, -0x1.daf2ae0c2d3d4p-55, -0x1.a7ebd09b7da01p-112},
	{0x1.a876812c0877cp-1, -0x1.fd36226fadd44p-56, -0x1.a3e128d60d178p-112},
	{0x1.abcac15271a2ap-1, 0x1.d887cd0341ab0p-56, 0x1.13051f1f78756p-110},
	{0x1.af25b0a61a7b5p-1, -0x1.676a52a1a618bp-55, 0x1.83ca5c112e2b8p-109},
	{0x1.b2875c92c4c99p-1, 0x1.9776b420ad283p-56, -0x1.b5429fa380fd1p-110},
	{0x1.b5efd29f24c26p-1, 0x1.3d5fd7d70a5edp-56, 0x1.5d5f6fce4df34p-110},
	{0x1.b95f206d17228p-1, 0x1.a94ad2c8fa0bfp-58, -0x1.15d6bc1f382dep-112},
	{0x1.bcd553b9d7b62p-1, 0x1.6ad4c353465b0p-61, -0x1.96d7d2ed211d8p-115},
	{0x1.c0527a5e384dep-1, -0x1.8bba170e59b65p-56, 0x1.e7eab88edd48ap-113},
	{0x1.c3d6a24ed8222p-1, -0x1.e1e0a76cb0685p-55, -0x1.5a82a13feb072p-111},
	{0x1.c761d99c5ba58p-1, 0x1.fe131f55e75f8p-55, 0x1.b2dadfe0da0cap-111},
	{0x1.caf42e73a4c7ep-1, -0x1.b5beee8bcee31p-55, 0x1.6e53c1a024e7fp-112},
	{0x1.ce8daf1e0ba95p-1, -0x1.7fe9b02c25e9bp-56, 0x1.3ae1894c29ffcp-111},
	{0x1.d22e6a0197c03p-1, -0x1.32ae7bdaf1116p-55, -0x1.d8b39da66d8b2p-110},
	{0x1.d5d66da13970fp-1, 0x1.a6cfe58cbd73bp-56, -0x1.4c79eb4be0792p-112},
	{0x1.d985c89d041a3p-1, 0x1.8798de3138a56p-57, 0x1.66cb6d6806d8cp-113},
	{0x1.dd3c89b26894ep-1, -0x1.589321a7ef10bp-60, 0x1.685c9ae277adap-114},
	{0x1.e0fabfbc702a4p-1, -0x1.8d0e700fcfb65p-56, -0x1.d140af38bf4c6p-111},
	{0x1.e4c079b3f8000p-1, 0x1.473ef07d5dd3bp-55, -0x1.973f185f391d8p-109},
	{0x1.e88dc6afecfc0p-1, -0x1.38e62149c16e2p-55, 0x1.a13b09ea005fep-110},
	{0x1.ec62b5e5881fbp-1, -0x1.08bb6309bd394p-58, 0x1.5e016a370f7aap-113},
	{0x1.f03f56a88b5d8p-1, -0x1.bad3fd501a227p-55, -0x1.8ca2e3f2f2a60p-109},
	{0x1.f423b86b7ee79p-1, 0x1.3d27ac39ed253p-57, -0x1.0c3f0af23c77bp-111},
	{0x1.f80feabfeefa5p-1, -0x1.b60bbd08aac55p-55, 0x1.5aa4626aad35ap-109},
	{0x1.fc03fd56aa225p-1, -0x1.a00d03b3359dep-59, 0x1.0b7b86a00bd76p-115},
	{0x1p+0, 0, 0},
	{0x1.0202015600446p+0, -0x1.3cf3671f50e32p-54, -0x1.762cd909c6dc2p-108},
	{0x1.04080ab55de39p+0, 0x1.7ab864b3e9045p-56, -0x1.94ba90defbe0cp-112},
	{0x1.06122436410ddp+0, 0x1.4e5659d75e95bp-56, 0x1.db86a15e9399ap-110},
	{0x1.08205601127edp+0, -0x1.9c7d0bdf15160p-54, 0x1.92f4d54a02f0ap-109},
	{0x1.0a32a84e9c1f6p+0, -0x1.fae8cf8c1a994p-54, 0x1.b11093f5f9810p-108},
	{0x1.0c49236829e8cp+0, -0x1.eb6980ce14da7p-55, 0x1.2bd43b4eb168cp-109},
	{0x1.0e63cfa7ab09dp+0, 0x1.7324137d6c342p-56, -0x1.f1518274fd619p-111},
	{0x1.1082b577d34edp+0, 0x1.f56c680678897p-54, 0x1.352a37452aaebp-109},
	{0x1.12a5dd543ccc5p+0, -0x1.1280f19dace1cp-55, 0x1.2b7b0691328e0p-110},
	{0x1.14cd4fc989cd6p+0, 0x1.1557a8671b89ep-54, 0x1.c5e0a6409a56ap-108},
	{0x1.16f9157587069p+0, 0x1.7923b72aa582dp-55, -0x1.47e1824751681p-109},
	{0x1.192937074e0cdp+0, 0x1.a24f46336ea04p-54, -0x1.543d6184b84aep-108},
	{0x1.1b5dbd3f68122p+0, 0x1.81f5c92a5200fp-55, -0x1.25546a988c432p-111},
	{0x1.1d96b0eff0e79p+0, 0x1.e8ac7a4d3206cp-55, 0x1.80afbb14d96d3p-110},
	{0x1.1fd41afcba45ep+0, 0x1.bb49242d10731p-54, 0x1.7efd715f60a62p-109},
	{0x1.2216045b6f5cdp+0, -0x1.8c4a5df1ec7e5p-58, -0x1.caf61d03cded6p-114},
	{0x1.245c7613b8a9bp+0, -0x1.bd4b1c37ea8a2p-57, -0x1.466a20a0b57bap-114},
	{0x1.26a7793f60164p+0, 0x1.5aeb9860044d0p-55, 0x1.c16499d8f1fa2p-109},
	{0x1.28f7170a755fdp+0, 0x1.d67b33fa73805p-54, -0x1.1cccaeaf68548p-108},
	{0x1.2b4b58b372c79p+0, 0x1.404dd9f031676p-54, -0x1.365acd5e89dddp-111},
	{0x1.2da4478b620c7p+0, 0x1.f5aa8ec61fc2dp-55, 0x1.1ea9c3cd4cba8p-111},
	{0x1.3001ecf601af7p+0, 0x1.7ab912c69ffebp-61, -0x1.41c8ba766608ap-115},
	{0x1.32645269ea829p+0, -0x1.b3564bc0ec9cdp-58, 0x1.212a227168672p-112},
	{0x1.34cb8170b5835p+0, 0x1.6a7062465be33p-55, 0x1.24d14239ac29cp-110},
	{0x1.373783a722012p+0, 0x1.3d47396807206p-54, 0x1.f9c9801de97fcp-110},
	{0x1.39a862bd3c106p+0, 0x1.7dd1a79cbd0fcp-54, 0x1.dd5453326e882p-110},
	{0x1.3c1e2876834aap+0, 0x1.fe918047a62b0p-54, -0x1.520896dd397d8p-108},
	{0x1.3e98deaa11dccp+0, -0x1.5722108fefcffp-54, 0x1.156d757760760p-108},
	{0x1.41188f42c3e32p+0, 0x1.e17611afc42c5p-57, -0x1.04ae39c5934f4p-114},
	{0x1.439d443f5f159p+0, -0x1.1c5b2e8735a43p-56, 0x1.f407f4863dfcep-111},
	{0x1.462707b2bac21p+0, -0x1.25fe139c4cffdp-55, -0x1.31f993fcb5b9dp-110},
	{0x1.48b5e3c3e8186p+0, 0x1.9d9ef0eda6eabp-54, -0x1.acb13bc778e9bp-112},
	{0x1.4b49e2ae5ac67p+0, 0x1.1945ded6ed86dp-54, 0x1.e6658ea3049fap-109},
	{0x1.4de30ec211e60p+0, 0x1.3b5223eca1712p-56, 0x1.a80e0c29c06a9p-110},
	{0x1.50817263c13cdp+0, -0x1.4582a5e2782cep-57, 0x1.4954dd6a72265p-111},
	{0x1.5325180cfacf7p+0, 0x1.b28b660a648dap-54, 0x1.fb64ec646587dp-108},
	{0x1.55ce0a4c58c7cp+0, -0x1.3660f48a2d416p-54, -0x1.608873cb24cf3p-110},
	{0x1.587c53c5a7af0p+0, 0x1.3b0e93c017937p-55, -0x1.a0be77ca3fbdcp-112},
	{0x1.5b2fff3210fd9p+0, 0x1.5c7b814f80bacp-54, 0x1.80c42251e9384p-108},
	{0x1.5de9176045ff5p+0, 0x1.da89923298baap-55, 0x1.00f0a76cb0bc0p-110},
	{0x1.60a7a734ab0e8p+0, 0x1.d5591f46f291bp-54, -0x1.690820eda8aa2p-109},
	{0x1.636bb9a983258p+0, 0x1.349cc31f7248dp-54, -0x1.ecee1789ebde9p-111},
	{0x1.663559cf1bc7cp+0, 0x1.68782fbafe59ep-54, -0x1.15d5bcbe603cap-108},
	{0x1.690492cbf9433p+0, -0x1.812833f7d6e43p-55, 0x1.d2cc2e4da989dp-110},
	{0x1.6bd96fdd034a2p+0, 0x1.fe7594e357317p-54, -0x1.fbfc108462da2p-108},
}

// cbrt(1 + k/128), k = 0 to 127.
var cbrtTriples = [...]triple{
	{0x1p+0, 0, 0},
	{0x1.00aa396152144p+0, 0x1.e3a78588caa12p-54, 0x1.fd9420c431bcbp-111},
	{0x1.01539221d4c97p+0, 0x1.6ea1c3189cbd5p-56, -0x1.0cc6278d1acfdp-110},
	{0x1.01fc0d20e677fp+0, -0x1.0b9af3806277dp-57, -0x1.b0555e0d16b00p-111},
	{0x1.02a3ad2ef6f48p+0, -0x1.4da1d77823a77p-56, 0x1.bad89f8473b6ep-110},
	{0x1.034a750df17adp+0, 0x1.63ba693e8409cp-55, 0x1.82e7d1b12559bp-111},
	{0x1.03f06771a2e33p+0, 0x1.5b5d69f8d8678p-54, 0x1.325442bc924f5p-108},
	{0x1.049587001c4b2p+0, 0x1.5837b473c9cf9p-55, 0x1.99189ce4b9bb2p-109},
	{0x1.0539d6521256fp+0, 0x1.49c36ff541c4bp-55, 0x1.368a05b4e3d0ap-111},
	{0x1.05dd57f33930cp+0, 0x1.e0a22b9f46243p-55, -0x1.05f51d2fe4b02p-109},
	{0x1.06800e629d672p+0, -0x1.b57a0dc284d7bp-54, -0x1.1c34865bb4841p-109},
	{0x1.0721fc12f9cbfp+0, 0x1.b9ff0ebe77086p-55, 0x1.f5b69fcbaf7f7p-110},
	{0x1.07c3236b0a73ap+0, -0x1.3c9fa0afd4c03p-55, -0x1.ac9f58c5fd805p-109},
	{0x1.086386c5dcf0ep+0, 0x1.f66bc098133f1p-54, -0x1.a5b5b814bd39dp-108},
	{0x1.090328731deb2p+0, 0x1.c65ef220a4107p-54, 0x1.33d63e5ee8fcfp-109},
	{0x1.09a20ab76428fp+0, 0x1.c182de2e79b68p-54, 0x1.d74acf515cd1dp-109},
	{0x1.0a402fcc79298p+0, 0x1.ba223201600a5p-57, -0x1.1819e6eb1d4b3p-111},
	{0x1.0add99e19f64dp+0, 0x1.0c00f5ee6fd72p-54, -0x1.2882d1dc09184p-109},
	{0x1.0b7a4b1bd64acp+0, 0x1.3aeabfe0a511fp-57, 0x1.fb789cee8929ep-111},
	{0x1.0c1645961c169p+0, -0x1.323286c7aeec5p-55, 0x1.dcee565985e31p-109},
	{0x1.0cb18b61ad8cfp+0, -0x1.63e7d5fd1b607p-54, 0x1.ae62494f4e6a5p-108},
	{0x1.0d4c1e8643b88p+0, -0x1.4e86b6cd85e8dp-54, 0x1.b3fda54424830p-108},
	{0x1.0de601024fb88p+0, -0x1.318c213b8d77dp-54, 0x1.16f674a9a9786p-108},
	{0x1.0e7f34cb34b42p+0, -0x1.f3cc4fa73bb5ap-55, -0x1.d18c9aa75f1cbp-112},
	{0x1.0f17bbcd80046p+0, -0x1.849421e01c9a6p-56, 0x1.23a936ef3c9ffp-110},
	{0x1.0faf97ed1fa58p+0, -0x1.d8b7f37275cecp-54, 0x1.8e11892d35779p-108},
	{0x1.1046cb0597001p+0, -0x1.cfc086f7acab6p-54, -0x1.9b9a1071593dep-108},
	{0x1.10dd56ea3219bp+0, -0x1.7c9a7334d2fc2p-54, -0x1.db8300eff1224p-110},
	{0x1.11733d66373bdp+0, 0x1.c800253dc2d63p-55, -0x1.8155e4aa5c245p-109},
	{0x1.1208803d171f4p+0, 0x1.b8a8332bb01e1p-54, -0x1.cc800daf8db18p-109},
	{0x1.129d212a9ba9cp+0, -0x1.b7ce7c64f1837p-54, -0x1.fd4299797e166p-111},
	{0x1.133121e3154adp+0, -0x1.404fd8c156bdap-55, 0x1.ad6e5fb6d2402p-113},
	{0x1.13c484138704fp+0, -0x1.abaee946d90b0p-55, 0x1.233e7fa91197ep-109},
	{0x1.14574961d12e0p+0, -0x1.8d855502ce6bep-56, 0x1.9c421e0e28f28p-112},
	{0x1.14e9736cdaf39p+0, -0x1.d2cc905775f6bp-55, 0x1.73741e49be481p-110},
	{0x1.157b03ccbaad6p+0, -0x1.7eaaefb8851c5p-54, 0x1.ec81c7fe0136ap-108},
	{0x1.160bfc12dd091p+0, -0x1.3cb1d11381442p-55, -0x1.de7bb11a02bf0p-110},
	{0x1.169c5dca2b191p+0, 0x1.8c5e881ddcef8p-55, -0x1.9fbce9c45cbd7p-109},
	{0x1.172c2a772f508p+0, -0x1.0af9734347334p-56, -0x1.f0854a41d7b5bp-110},
	{0x1.17bb639839755p+0, -0x1.0bc3c60234153p-54, -0x1.b7f1efe3544e3p-108},
	{0x1.184a0aa58191fp+0, 0x1.3dfe8513fb1bep-54, -0x1.41235976079b0p-108},
	{0x1.18d8211149ef1p+0, -0x1.e53ecd61f4b20p-59, 0x1.33d23f0cb4ebap-113},
	{0x1.1965a848001d3p+0, 0x1.1c6a574a52f6ap-56, -0x1.07ca3d029c9a3p-116},
	{0x1.19f2a1b05d172p+0, -0x1.dc895472391d6p-54, -0x1.37e850babff3bp-108},
	{0x1.1a7f0eab8483dp+0, -0x1.423be721a60d3p-54, 0x1.b5c2429ce42fap-109},
	{0x1.1b0af09523200p+0, -0x1.3c804af76a63cp-54, -0x1.5404e80edc415p-109},
	{0x1.1b9648c38c55dp+0, 0x1.53d24556529bfp-54, 0x1.683a877f9a517p-108},
	{0x1.1c211887d70a0p+0, -0x1.7a6ff078be803p-58, 0x1.bae7a801be9c7p-113},
	{0x1.1cab612df9a46p+0, -0x1.58e1f0c95b64cp-54, 0x1.988b8570d05a9p-110},
	{0x1.1d3523fce55adp+0, 0x1.7c0ccd34c7e74p-55, 0x1.f5e565841d26ep-109},
	{0x1.1dbe6236a0c45p+0, 0x1.3b597f55fb372p-54, -0x1.fd4624019bd49p-108},
	{0x1.1e471d1861b9cp+0, -0x1.ae97a393dd7d8p-54, -0x1.6416dd8ef8975p-108},
	{0x1.1ecf55daa68a5p+0, -0x1.e6ab73fbffb9bp-55, -0x1.5e90fb9fa172ep-113},
	{0x1.1f570db14e896p+0, -0x1.cbbd509a54e0fp-54, -0x1.64977217317b5p-109},
	{0x1.1fde45cbb1f9fp+0, 0x1.3647bfa4c9d42p-56, 0x1.a0824e8d2e7e0p-110},
	{0x1.2064ff54b95e0p+0, -0x1.7aa767ba64cb8p-54, 0x1.8024139be3ea5p-110},
	{0x1.20eb3b72f42d5p+0, 0x1.1b2d415ac0867p-55, 0x1.60280d874ff81p-111},
	{0x1.2170fb48aef9cp+0, 0x1.221b7b7493eccp-56, 0x1.a60cb5076f1b4p-111},
	{0x1.21f63ff409043p+0, -0x1.4ddea841ddf27p-55, -0x1.631ef9b978a35p-109},
	{0x1.227b0a8f09477p+0, 0x1.88fd1104ed210p-56, 0x1.ce065133631cdp-110},
	{0x1.22ff5c2fb2fd0p+0, -0x1.1be733ef4411bp-57, 0x1.54673d723d842p-111},
	{0x1.238335e8199f6p+0, -0x1.14434a6a75d3ep-54, -0x1.88c66b5b03054p-109},
	{0x1.240698c6746e5p+0, 0x1.879ba4bf3b3d7p-54, -0x1.259a81fed0b2cp-110},
	{0x1.248985d53178cp+0, 0x1.18782747b5c5bp-55, 0x1.0bd6ab5f220e3p-109},
	{0x1.250bfe1b082f5p+0, -0x1.91cacc5e8d601p-58, 0x1.ed0c498fa3904p-113},
	{0x1.258e029b0b840p+0, 0x1.063cd6b2ad385p-54, 0x1.8ad8396ecdcb5p-108},
	{0x1.260f9454bb99bp+0, 0x1.fab0c13f469e1p-54, 0x1.1b89999076fdcp-108},
	{0x1.2690b4441706ep+0, -0x1.b94a2e5a2f6fbp-54, 0x1.5689221ed8985p-109},
	{0x1.27116361abaeap+0, -0x1.8638ac071de27p-55, 0x1.5834c70439db9p-110},
	{0x1.2791a2a2a733bp+0, -0x1.1142f9d6afebfp-54, -0x1.01d54f38a97b3p-109},
	{0x1.281172f8e7074p+0, -0x1.e7765bc31332bp-54, -0x1.6280d407d624dp-109},
	{0x1.2890d55308176p+0, -0x1.bdaa898374ce0p-55, 0x1.031beba45cf0ep-110},
	{0x1.290fca9c761f8p+0, -0x1.d23ad6b337221p-54, 0x1.596aedc4b510cp-108},
	{0x1.298e53bd7a9d4p+0, 0x1.b6dd3ea779b27p-56, -0x1.094645cd20f78p-110},
	{0x1.2a0c719b4b6d1p+0, -0x1.bdf74a96025fep-55, 0x1.cb1e345d2e8cep-109},
	{0x1.2a8a2518190fdp+0, 0x1.6fb957d379f19p-54, -0x1.9e6a4266663b1p-111},
	{0x1.2b076f131c9d7p+0, -0x1.0e825d5d58070p-54, -0x1.c7486ab69128dp-108},
	{0x1.2b845068a5651p+0, -0x1.02e113123ec94p-56, -0x1.71a0518617acep-110},
	{0x1.2c00c9f2263edp+0, -0x1.ec0be268941a5p-54, 0x1.d2c1181d39585p-110},
	{0x1.2c7cdc86428fap+0, 0x1.b272610cab7f7p-55, -0x1.ad794730801a6p-109},
	{0x1.2cf888f8db02fp+0, -0x1.fcc21d734a7c9p-54, -0x1.b3bc6f5a9e858p-110},
	{0x1.2d73d01b19fa6p+0, -0x1.67ca2c51d9c92p-55, -0x1.2938ea83c9328p-110},
	{0x1.2deeb2bb7fb79p+0, -0x1.1fda797fd0b9ep-56, 0x1.615c1494a8d8ep-111},
	{0x1.2e6931a5ee400p+0, 0x1.25270d2c1484cp-56, 0x1.14649a984066bp-111},
	{0x1.2ee34da3b4fe3p+0, -0x1.91b3648ddf04ap-54, 0x1.9bd026e813dffp-108},
	{0x1.2f5d077b9c210p+0, -0x1.0429f964971bep-54, 0x1.8d3545b33e9d2p-110},
	{0x1.2fd65ff1efbbcp+0, 0x1.dc858047b4423p-55, 0x1.6d3dc20f4a2bap-109},
	{0x1.304f57c88aa80p+0, -0x1.22845f4512731p-56, 0x1.3de25c5796be1p-110},
	{0x1.30c7efbee12adp+0, 0x1.88110ccd01cb9p-54, 0x1.3a73532058990p-108},
	{0x1.314028920b5fdp+0, -0x1.32cbf64159110p-54, 0x1.138bfca479f8fp-110},
	{0x1.31b802fccf6a2p+0, 0x1.f845dd2cd4eb9p-55, 0x1.381cb79e4edcfp-111},
	{0x1.322f7fb7ab6e9p+0, -0x1.9ba0784d268c0p-57, -0x1.499819058035cp-113},
	{0x1.32a69f78df567p+0, 0x1.190028e31895fp-54, 0x1.e303ccff0a1bcp-109},
	{0x1.331d62f4765e5p+0, 0x1.aaaef799e791cp-55, 0x1.42fc8eb0af005p-110},
	{0x1.3393cadc50709p+0, -0x1.3cfbcdf50ced1p-57, -0x1.22805fa76dd85p-111},
	{0x1.3409d7e02b4dfp+0, 0x1.9c7c941d7efe3p-54, 0x1.f15ed7a32e794p-108},
	{0x1.347f8aadab855p+0, -0x1.6834744141c33p-54, 0x1.97d739bc1b835p-109},
	{0x1.34f4e3f0653b1p+0, -0x1.a076f79876e4cp-54, -0x1.a66f95e551620p-110},
	{0x1.3569e451e4c2bp+0, -0x1.8da5a3fcb94a6p-54, 0x1.2908618791c33p-109},
	{0x1.35de8c79b70a7p+0, 0x1.06f6be54e5a4bp-56, 0x1.227ab8fca4b8bp-111},
	{0x1.3652dd0d71db1p+0, -0x1.1d39565bebfe3p-54, -0x1.cc5e89964a710p-108},
	{0x1.36c6d6b0bbec0p+0, -0x1.4ee109f45fb23p-54, -0x1.c9ce7f99281b7p-111},
	{0x1.373a7a0554cdfp+0, -0x1.b7ba51285638fp-55, 0x1.a4f7d91ae0bfcp-113},
	{0x1.37adc7ab1cac0p+0, 0x1.1c3d47251a8bbp-54, -0x1.e414479497e1ep-114},
	{0x1.3820c0401be52p+0, -0x1.fa4aeae8f4cf6p-54, -0x1.95b63db0c32ecp-108},
	{0x1.389364608a7dep+0, -0x1.aab3195e6d925p-54, -0x1.e0056072d115ap-111},
	{0x1.3905b4a6d76cep+0, 0x1.9d178b333da67p-58, 0x1.fcaba233ed949p-114},
	{0x1.3977b1abafc18p+0, 0x1.46c216668b2fep-55, -0x1.f318c23845b96p-110},
	{0x1.39e95c0605a66p+0, -0x1.6ab0b025e315cp-54, 0x1.65034a4f6ab7ap-110},
	{0x1.3a5ab44b17406p+0, 0x1.983538dd9fa76p-58, 0x1.1cca07b68e16cp-112},
	{0x1.3acbbb0e756b7p+0, -0x1.48f24b8533a30p-55, 0x1.45528dd1f5f66p-109},
	{0x1.3b3c70e20a54fp+0, 0x1.edbc080944cfdp-54, 0x1.e71418bc3f048p-108},
	{0x1.3bacd6561ff5ep+0, -0x1.bc28832e16370p-54, -0x1.afe10102ccd58p-108},
	{0x1.3c1cebf9666bep+0, 0x1.025f8cc24ce2bp-54, -0x1.d691781d5c647p-108},
	{0x1.3c8cb258fa341p+0, -0x1.7ce1133275884p-54, -0x1.8e32fb7bb5a80p-112},
	{0x1.3cfc2a006a45dp+0, -0x1.98decb6e34ca1p-56, -0x1.c1f11c055c4ffp-110},
	{0x1.3d6b5379be10cp+0, -0x1.4bd90fe778214p-55, -0x1.519351b9a478fp-109},
	{0x1.3dda2f4d7b5cap+0, -0x1.9efdd82ea1243p-54, 0x1.aa2e89eb1cac1p-111},
	{0x1.3e48be02ac0cfp+0, -0x1.12a2bf5c727bcp-54, -0x1.7101ef6b4b38ap-108},
	{0x1.3eb7001ee3c8ap+0, -0x1.87f82854f8184p-58, 0x1.d05c14eb8c3bdp-112},
	{0x1.3f24f62645865p+0, -0x1.511c3dc3d8dc8p-57, 0x1.f1b4d3ed7d875p-111},
	{0x1.3f92a09b88fdep+0, -0x1.7877394035479p-56, 0x1.583a21504ae6bp-114},
	{0x1.4000000000000p+0, 0, 0},
	{0x1.406d14d39bb44p+0, -0x1.76ad5c4fd4572p-55, -0x1.decefa2ae68c2p-110},
	{0x1.40d9df94f1be1p+0, 0x1.bf1c95b986a72p-56, -0x1.5645ece01351ep-112},
	{0x1.414660c14149bp+0, -0x1.81c10a32f5411p-55, -0x1.c547e5b3ef871p-110},
	{0x1.41b298d47800ep+0, 0x1.37d0b6125acfap-57, 0x1.fb8cbb54b745bp-115},
	{0x1.421e884936e8dp+0, -0x1.d9b90f6537dd3p-54, 0x1.18aaec363340bp-109},
}

// cbrt(2^p), p = 0, 1, 2.
var cbrtTwoTriples = [...]triple{
	{0x1p+0, 0, 0},
	{0x1.428a2f98d728bp+0, -0x1.ddc22548ea41ep-56, 0x1.43430a23c40a4p-110},
	{0x1.965fea53d6e3dp+0, -0x1.f53e999952f09p-54, 0x1.37bc6601d8856p-110},
}

// asin(n/32), n = 0 to 16.
var asinTriples = [...]triple{
	{0, 0, 0},
	{0x1.000aabde0b9c8p-5, 0x1.d6d94551be3e9p-61, 0x1.271557098ec10p-116},
	{0x1.002abde953619p-4, 0x1.182e2dc6ddeedp-58, 0x1.2beaeab7d6d3ap-113},
	{0x1.809092913e52ep-4, 0x1.cf6b1f9befb16p-60, -0x1.9d11ebd92ba57p-114},
	{0x1.00abe0c129e1ep-3, 0x1.7ceb0ee49d42ap-60, -0x1.fc4e026e3f65fp-115},
	{0x1.41510cb011423p-3, -0x1.15d675180eda8p-58, -0x1.1b0206dd746ffp-112},
	{0x1.82494ed0e78fcp-3, -0x1.443c2697a7d2fp-57, 0x1.24c5240a1d36bp-113},
	{0x1.c3a6f13aae84bp-3, -0x1.7739d10fe8bc1p-57, -0x1.3a5cd82753d9dp-111},
	{0x1.02be9ce0b87cdp-2, 0x1.e5d09da2e0f04p-58, 0x1.1dfd2ea46683fp-113},
	{0x1.23f0523c5dc2bp-2, 0x1.4fc2674a3d6b2p-59, -0x1.f212fb9d1e3e5p-116},
	{0x1.457393b90e2aap-2, 0x1.b1f64d329fe98p-56, 0x1.c02b8d66ebcd9p-111},
	{0x1.675441329986ep-2, 0x1.d027ed2bb2edap-56, -0x1.3b748235620fcp-111},
	{0x1.899f4edc962d3p-2, 0x1.3e919701b7c6dp-60, 0x1.f4f25bb3101cbp-114},
	{0x1.ac62fec0b2a92p-2, 0x1.cb9f9a052f11fp-56, 0x1.4658f22c00d2dp-110},
	{0x1.cfaf27460fe9fp-2, -0x1.8bf75f355f723p-57, 0x1.02ae5561ace25p-116},
	{0x1.f3958aecddef4p-2, -0x1.fc135930a7786p-58, 0x1.ef1c74b54bdc3p-112},
	{0x1.0c152382d7366p-1, -0x1.ee6913347c2a6p-55, -0x1.4bba47a9e5fd2p-111},
}

// sqrt(1 - (n/32)^2), n = 0 to 16.
var asinSqrtTriples = [...]triple{
	{0x1p+0, 0, 0},
	{0x1.ffbffbff7fec0p-1, -0x1.c05410835ab2ep-56, -0x1.810d52ea6a0c4p-110},
	{0x1.feffbfdfebf1fp-1, 0x1.5dee51994f18bp-55, -0x1.9b7640c425768p-109},
	{0x1.fdbeba917c3f5p-1, 0x1.2c0681a46a556p-55, -0x1.726c27e8447f7p-109},
	{0x1.fbfbf7ebc755fp-1, -0x1.b2a94084da0b6p-55, 0x1.b989ff7d9feddp-109},
	{0x1.f9b61d0237250p-1, 0x1.d3ca3915d1a44p-55, -0x1.a8c03eb83e792p-109},
	{0x1.f6eb62d27730dp-1, -0x1.401d95ca1ce34p-55, 0x1.4934adecda2e9p-109},
	{0x1.f3998f1b1886cp-1, 0x1.6b699b6f7882ep-55, 0x1.aef16630121dfp-112},
	{0x1.efbdeb14f4edap-1, -0x1.3a145fe1be078p-55, -0x1.77016d3b25e77p-109},
	{0x1.eb5537b1434dap-1, -0x1.c180d47e8730cp-55, -0x1.041280fa3af2ep-110},
	{0x1.e65b9edeba38ep-1, -0x1.bb73251e8c364p-57, 0x1.a4ab643efea8fp-111},
	{0x1.e0cca12e97895p-1, -0x1.316d1acdf7b57p-55, -0x1.48c8c93d41e4fp-110},
	{0x1.daa2fefaae1d8p-1, -0x1.3fe0e03f44594p-58, -0x1.e1fe7af61bc54p-113},
	{0x1.d3d89be176072p-1, 0x1.54fe1c5f17367p-56, -0x1.ff317234525ccp-111},
	{0x1.cc665b0328622p-1, -0x1.1baa4d369f814p-55, -0x1.cb24284b904e1p-109},
	{0x1.c443f1d4d22afp-1, -0x1.dea6ecd25e5e4p-57, -0x1.e11d868f67a6bp-112},
	{0x1.bb67ae8584caap-1, 0x1.cec95d0b5c1e3p-55, -0x1.f11db689f2ccfp-111},
}

// Maclaurin coefficients of sin(t degrees), odd powers t, t^3, ...
var sindCoeffTriples = [...]triple{
	{0x1.1df46a2529d39p-6, 0x1.5c1d8becdd291p-62, -0x1.1d937fa428858p-116},
	{-0x1.dbb820d942f78p-21, -0x1.e1d983fa54149p-75, 0x1.a225a82c85698p-129},
	{0x1.dad94eae10d70p-37, 0x1.de3944a894f64p-91, 0x1.9db6a4fc6004fp-147},
	{-0x1.c368d9fa95091p-54, -0x1.448c19de4a2c1p-112, 0x1.24fe811af90b1p-166},
	{0x1.f4a604cb81c85p-72, 0x1.242d4c15190bbp-126, 0x1.bfde8ef031210p-180},
	{-0x1.6b711b387526fp-90, -0x1.a5dd5205355bbp-147, -0x1.3d996b63e7a7fp-202},
	{0x1.74142ddf40437p-109, -0x1.a2f1ee99a8253p-163, 0x1.5ae80b79fa0ddp-217},
	{-0x1.1af84e6dc70d1p-128, 0x1.872fca7e82523p-184, -0x1.f41b2a89a5056p-240},
	{0x1.4c4bf5fd7c39ep-148, 0x1.1caff82642164p-203, 0x1.cd4ad2e33d4e4p-258},
}

// Maclaurin coefficients of cos(t degrees), even powers 1, t^2, ...
var cosdCoeffTriples = [...]triple{
	{0x1p+0, 0, 0},
	{-0x1.3f6a1db141fbap-13, 0x1.c0df1017d7cc2p-67, 0x1.3725ab418f33cp-121},
	{0x1.09b116a83dc8ep-28, -0x1.d727e78d5812bp-86, -0x1.c33e522cd65a9p-140},
	{-0x1.619b85bbcad0cp-45, 0x1.b031433f3a556p-102, 0x1.d0d552c5eb236p-157},
	{0x1.f83ab5c6aceb4p-63, 0x1.60c90ab45a5dap-119, 0x1.281d20a008bb0p-173},
	{-0x1.bf6240ed3dc8dp-81, -0x1.b0e83b4f55e59p-137, -0x1.266a9d5294f22p-191},
	{0x1.0ea54688ed7d3p-99, 0x1.9ce976ee7556ap-154, 0x1.e3076e931e62bp-211},
	{-0x1.dafd60a8b92ddp-119, -0x1.14473acf9f8bep-173, -0x1.2ed428fe4ab1dp-227},
	{0x1.3c14994edbd3bp-138, -0x1.10f61fe397b49p-192, -0x1.b0a6009bb1a52p-246},
}

// 1/n!, n = 0 to 14.
var expCoeffTriples = [...]triple{
	{0x1p+0, 0, 0},
	{0x1p+0, 0, 0},
	{0x1p-1, 0, 0},
	{0x1.5555555555555p-3, 0x1.5555555555555p-57, 0x1.5555555555555p-111},
	{0x1.5555555555555p-5, 0x1.5555555555555p-59, 0x1.5555555555555p-113},
	{0x1.1111111111111p-7, 0x1.1111111111111p-63, 0x1.1111111111111p-119},
	{0x1.6c16c16c16c17p-10, -0x1.f49f49f49f49fp-65, -0x1.27d27d27d27d2p-119},
	{0x1.a01a01a01a01ap-13, 0x1.a01a01a01a01ap-73, 0x1.a01a01a01a01ap-133},
	{0x1.a01a01a01a01ap-16, 0x1.a01a01a01a01ap-76, 0x1.a01a01a01a01ap-136},
	{0x1.71de3a556c734p-19, -0x1.c154f8ddc6c00p-73, 0x1.71de3a556c734p-127},
	{0x1.27e4fb7789f5cp-22, 0x1.cbbc05b4fa99ap-76, -0x1.c6d278883e8f5p-132},
	{0x1.ae64567f544e4p-26, -0x1.c062e06d1f209p-80, 0x1.c7880adcbc46ep-136},
	{0x1.1eed8eff8d898p-29, -0x1.2aec959e14c06p-83, 0x1.2fb0073dd2d9ep-139},
	{0x1.6124613a86d09p-33, 0x1.f28e0cc748ebep-87, -0x1.7b2c4c8a840bcp-141},
	{0x1.93974a8c07c9dp-37, 0x1.05d6f8a2efd1fp-92, 0x1.3aa3346236a5dp-147},
}

// Maclaurin coefficients of asin(x)/x in powers of x^2.
var asinCoeffTriples = [...]triple{
	{0x1p+0, 0, 0},
	{0x1.5555555555555p-3, 0x1.5555555555555p-57, 0x1.5555555555555p-111},
	{0x1.3333333333333p-4, 0x1.999999999999ap-59, -0x1.999999999999ap-113},
	{0x1.6db6db6db6db7p-5, -0x1.2492492492492p-60, -0x1.2492492492492p-114},
	{0x1.f1c71c71c71c7p-6, 0x1.c71c71c71c71cp-62, 0x1.c71c71c71c71cp-116},
	{0x1.6e8ba2e8ba2e9p-6, -0x1.1745d1745d174p-60, -0x1.745d1745d1746p-114},
	{0x1.1c4ec4ec4ec4fp-6, -0x1.d89d89d89d89ep-61, 0x1.d89d89d89d89ep-115},
	{0x1.c99999999999ap-7, -0x1.999999999999ap-61, 0x1.999999999999ap-115},
	{0x1.7a87878787878p-7, 0x1.e1e1e1e1e1e1ep-61, 0x1.e1e1e1e1e1e1ep-117},
	{0x1.3fde50d79435ep-7, 0x1.435e50d79435ep-61, 0x1.435e50d79435ep-115},
	{0x1.12ef3cf3cf3cfp-7, 0x1.e79e79e79e79ep-62, 0x1.e79e79e79e79ep-116},
	{0x1.df3bd37a6f4dfp-8, -0x1.90b21642c8591p-62, 0x1.37a6f4de9bd38p-116},
	{0x1.a6863d70a3d71p-8, -0x1.70a3d70a3d70ap-62, -0x1.eb851eb851eb8p-117},
	{0x1.782dda12f684cp-8, -0x1.2f684bda12f68p-63, -0x1.2f684bda12f68p-117},
}

// binomial(1/3, n): Maclaurin coefficients of cbrt(1 + s).
var cbrtCoeffTriples = [...]triple{
	{0x1p+0, 0, 0},
	{0x1.5555555555555p-2, 0x1.5555555555555p-56, 0x1.5555555555555p-110},
	{-0x1.c71c71c71c71cp-4, -0x1.c71c71c71c71cp-58, -0x1.c71c71c71c71cp-112},
	{0x1.f9add3c0ca458p-5, 0x1.f9add3c0ca458p-59, 0x1.f9add3c0ca458p-113},
	{-0x1.511e8d2b3183bp-5, 0x1.0db20a88f4696p-65, -0x1.9cf8a021b6415p-119},
	{0x1.ee7113506ac12p-6, 0x1.0ae2da6cdc884p-60, 0x1.3aa50c4a727afp-117},
	{-0x1.8090d6221a247p-6, -0x1.77338b19ca8b7p-62, -0x1.d8477b56590a4p-117},
	{0x1.3750ad588f115p-6, -0x1.59717a87ea0bbp-64, 0x1.0579c023cafcbp-119},
	{-0x1.036de5c9cc8e7p-6, 0x1.7951276e28613p-61, 0x1.dd0c535378183p-115},
	{0x1.b9fd9a74400f2p-7, -0x1.d91f348d3ed79p-61, 0x1.f25abe25f502fp-117},
	{-0x1.7f0efd53aefc0p-7, -0x1.10a0b05263231p-61, 0x1.4a2e02ef8d4b8p-116},
	{0x1.50a0910b7abe7p-7, 0x1.65eaa76f24597p-65, 0x1.b86ef31e4d32fp-119},
}

